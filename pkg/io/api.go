package io

import (
	"io/fs"
	"os"
)

// FileIO is an interface for the read-only file operations used when scanning and loading records
type FileIO interface {
	Stat(target string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WalkDir(fsys fs.FS, root string, fn fs.WalkDirFunc) error
}
