package io

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:generate mockgen -package mocks -destination mocks/mock_fileio.go github.com/kasuboski/mediagroup/pkg/io FileIO

var (
	_ FileIO = (*MediaFileSystem)(nil)

	ErrNotDirectory = errors.New("not a directory")
)

// MediaFileSystem is the default implementation of file io using the os package
type MediaFileSystem struct{}

// Stat is a wrapper around os.Stat
func (o *MediaFileSystem) Stat(target string) (os.FileInfo, error) {
	return os.Stat(target)
}

// ReadFile is a wrapper around os.ReadFile
func (o *MediaFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WalkDir is a wrapper around fs.WalkDir
func (o *MediaFileSystem) WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error {
	return fs.WalkDir(fsys, root, fn)
}

// EnsureDir returns ErrNotDirectory if path exists but is not a directory
func EnsureDir(f FileIO, path string) error {
	info, err := f.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	return nil
}
