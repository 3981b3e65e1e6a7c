package seedscan

// FileScanner discovers data files in a single directory.
type FileScanner interface {
	// Discover lists the regular files in dir whose names match FileNamePattern,
	// sorted in ascending byte order. A missing dir yields ErrDirectoryNotFound.
	Discover(dir string) ([]string, error)
}
