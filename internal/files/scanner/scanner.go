package scanner

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/vvka-141/seedscan/internal/files/filesystem"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

var fileNameRe = regexp.MustCompile(seedscan.FileNamePattern)

// Scanner discovers data files in a single directory.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
}

// NewScanner creates a new file scanner backed by the OS filesystem.
func NewScanner() *Scanner {
	return &Scanner{
		fsProvider: filesystem.NewOSFileSystem(),
	}
}

// NewScannerWithFS creates a new file scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		fsProvider: fsProvider,
	}
}

// Matches reports whether name satisfies the data file naming rule:
// one or more ASCII alphanumerics followed by the literal ".ixt".
func Matches(name string) bool {
	return fileNameRe.MatchString(name)
}

// Discover lists dir (non-recursively) and returns the names of regular files
// matching the naming rule, sorted in ascending byte order.
//
// A missing dir, or a path that is not a directory, yields an error wrapping
// seedscan.ErrDirectoryNotFound whose message embeds the path.
func (s *Scanner) Discover(dir string) ([]string, error) {
	info, err := s.fsProvider.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("directory '%s': %w", dir, seedscan.ErrDirectoryNotFound)
		}
		return nil, fmt.Errorf("failed to access directory '%s': %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("'%s' is not a directory: %w", dir, seedscan.ErrDirectoryNotFound)
	}

	entries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory '%s': %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.Mode().IsRegular() {
			continue
		}
		if Matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// Report prints the discovery result in the human-readable layout:
// a header followed by one name per line, or a single "no matches" line.
func Report(w io.Writer, names []string) error {
	if len(names) == 0 {
		_, err := fmt.Fprintln(w, "No matching files found.")
		return err
	}

	if _, err := fmt.Fprintln(w, "Found files:"); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDirectory returns the datafiles directory located beside the
// running executable. Falls back to the working directory if the
// executable path cannot be determined.
func DefaultDirectory() string {
	exe, err := os.Executable()
	if err != nil {
		return seedscan.DataDirName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), seedscan.DataDirName)
}

// Verify Scanner implements the interface at compile time
var _ seedscan.FileScanner = (*Scanner)(nil)
