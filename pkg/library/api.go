package library

import (
	"context"
	"errors"

	"github.com/kasuboski/mediagroup/pkg/grouping"
)

//go:generate mockgen -package mocks -destination mocks/mock_library.go github.com/kasuboski/mediagroup/pkg/library Library

var ErrNoFileSystem = errors.New("library has no file system")

// Library finds media files and describes them as scan records
type Library interface {
	Root() string
	Scan(ctx context.Context) ([]grouping.FileRecord, error)
}
