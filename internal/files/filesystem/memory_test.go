package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	mfs.AddFile("datafiles/b.ixt", "b")
	mfs.AddFile("datafiles/a.ixt", "a")
	mfs.AddFile("datafiles/nested/deep.ixt", "deep")
	mfs.AddFile("other.txt", "x")

	infos, err := mfs.ReadDir("/test/project/datafiles")
	require.NoError(t, err)

	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	assert.Equal(t, []string{"a.ixt", "b.ixt", "nested"}, names, "ReadDir is single-level and sorted")
}

func TestMemoryFileSystem_ReadDir_Relative(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.ixt", "x")

	infos, err := mfs.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "root.ixt", infos[0].Name())
}

func TestMemoryFileSystem_ReadDir_Missing(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")

	_, err := mfs.ReadDir("missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadDir_OnFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("file.ixt", "x")

	_, err := mfs.ReadDir("file.ixt")
	require.Error(t, err)
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_AddDir(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddDir("datafiles/dir.ixt")

	info, err := mfs.Stat("datafiles/dir.ixt")
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	info, err = mfs.Stat("datafiles")
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "parent directories are created implicitly")
}

func TestMemoryFileSystem_AddFileWithMode(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFileWithMode("pipe.ixt", "", fs.ModeNamedPipe)

	info, err := mfs.Stat("pipe.ixt")
	require.NoError(t, err)
	assert.False(t, info.Mode().IsRegular())
	assert.False(t, info.IsDir())
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/test/project")
	mfs.AddFile("root.ixt", "abc")

	info, err := mfs.Stat("/test/project/root.ixt")
	require.NoError(t, err)
	require.False(t, info.IsDir())
	require.Equal(t, "root.ixt", info.Name())
	require.Equal(t, int64(3), info.Size())

	info, err = mfs.Stat("/test/project")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
