package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// FileSystemProvider is the read-only view of a filesystem used by the scanner.
//
// Errors for missing paths wrap fs.ErrNotExist so callers can use errors.Is.
type FileSystemProvider interface {
	// ReadDir reads the entries of a single directory (not recursive).
	// Symbolic links are resolved, so Mode() describes the link target.
	ReadDir(path string) ([]FileInfo, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
