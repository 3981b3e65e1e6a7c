package scanner

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/seedscan/internal/files/filesystem"
	"github.com/vvka-141/seedscan/pkg/seedscan"
)

func newTestScanner() (*Scanner, *filesystem.MemoryFileSystem) {
	fs := filesystem.NewMemoryFileSystem("/project")
	return NewScannerWithFS(fs), fs
}

func TestNewScannerWithFS_NilFS(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for nil filesystem")
		}
	}()
	NewScannerWithFS(nil)
}

func TestDiscover_FiltersAndSorts(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("datafiles/a1.ixt", "")
	mfs.AddFile("datafiles/B2.ixt", "")
	mfs.AddFile("datafiles/bad-name.ixt", "")
	mfs.AddFile("datafiles/noext", "")
	mfs.AddFile("datafiles/a1.txt", "")

	names, err := s.Discover("/project/datafiles")
	require.NoError(t, err)

	// Byte order: uppercase sorts before lowercase.
	assert.Equal(t, []string{"B2.ixt", "a1.ixt"}, names)
}

func TestDiscover_ExcludesNonRegularEntries(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("datafiles/keep.ixt", "")
	mfs.AddDir("datafiles/dir.ixt")
	mfs.AddFileWithMode("datafiles/pipe.ixt", "", fs.ModeNamedPipe)
	mfs.AddFileWithMode("datafiles/link.ixt", "", fs.ModeSymlink)

	names, err := s.Discover("/project/datafiles")
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.ixt"}, names)
}

func TestDiscover_ExcludesDotfilesAndOddNames(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("datafiles/.ixt", "")
	mfs.AddFile("datafiles/.hidden.ixt", "")
	mfs.AddFile("datafiles/under_score.ixt", "")
	mfs.AddFile("datafiles/two.dots.ixt", "")
	mfs.AddFile("datafiles/UPPER.IXT", "")
	mfs.AddFile("datafiles/x.ixt.bak", "")
	mfs.AddFile("datafiles/9.ixt", "")

	names, err := s.Discover("/project/datafiles")
	require.NoError(t, err)
	assert.Equal(t, []string{"9.ixt"}, names)
}

func TestDiscover_NonRecursive(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("datafiles/top.ixt", "")
	mfs.AddFile("datafiles/sub/nested.ixt", "")

	names, err := s.Discover("/project/datafiles")
	require.NoError(t, err)
	assert.Equal(t, []string{"top.ixt"}, names)
}

func TestDiscover_EmptyDirectory(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddDir("datafiles")

	names, err := s.Discover("/project/datafiles")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestDiscover_MissingDirectory(t *testing.T) {
	s, _ := newTestScanner()

	names, err := s.Discover("/project/datafiles")
	require.Error(t, err)
	assert.Nil(t, names)
	assert.True(t, errors.Is(err, seedscan.ErrDirectoryNotFound))
	assert.Contains(t, err.Error(), "/project/datafiles")
}

func TestDiscover_PathIsFile(t *testing.T) {
	s, mfs := newTestScanner()
	mfs.AddFile("datafiles", "not a directory")

	_, err := s.Discover("/project/datafiles")
	require.Error(t, err)
	assert.True(t, errors.Is(err, seedscan.ErrDirectoryNotFound))
	assert.Contains(t, err.Error(), "/project/datafiles")
}

func TestDiscover_OSFileSystem(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"zeta.ixt", "Alpha.ixt", "bad-name.ixt", "note.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder.ixt"), 0755))

	names, err := NewScanner().Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha.ixt", "zeta.ixt"}, names)
}

func TestDiscover_OSFileSystem_Missing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "datafiles")

	_, err := NewScanner().Discover(missing)
	require.Error(t, err)
	assert.True(t, errors.Is(err, seedscan.ErrDirectoryNotFound))
	assert.Contains(t, err.Error(), missing)
}

func TestReport(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"matches", []string{"B2.ixt", "a1.ixt"}, "Found files:\nB2.ixt\na1.ixt\n"},
		{"empty", nil, "No matching files found.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Report(&buf, tt.names))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDefaultDirectory(t *testing.T) {
	dir := DefaultDirectory()
	assert.Equal(t, seedscan.DataDirName, filepath.Base(dir))
}

// statDirFS is the smallest provider the scanner accepts: Stat and ReadDir only.
type statDirFS struct {
	dir     filesystem.FileInfo
	entries []filesystem.FileInfo
}

func (f statDirFS) Stat(string) (filesystem.FileInfo, error) { return f.dir, nil }

func (f statDirFS) ReadDir(string) ([]filesystem.FileInfo, error) { return f.entries, nil }

func TestDiscover_NeedsOnlyStatAndReadDir(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/data")
	mfs.AddFile("z9.ixt", "")
	mfs.AddFile("a1.ixt", "")
	mfs.AddFileWithMode("p1.ixt", "", fs.ModeNamedPipe)

	dirInfo, err := mfs.Stat("/data")
	require.NoError(t, err)
	entries, err := mfs.ReadDir("/data")
	require.NoError(t, err)

	names, err := NewScannerWithFS(statDirFS{dir: dirInfo, entries: entries}).Discover("/data")
	require.NoError(t, err)
	assert.Equal(t, []string{"a1.ixt", "z9.ixt"}, names)
}
