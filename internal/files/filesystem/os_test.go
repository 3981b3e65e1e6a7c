package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestOSFileSystem_ReadDir(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a1.ixt"), []byte("a"), 0644)
	os.WriteFile(filepath.Join(dir, "b2.ixt"), []byte("b"), 0644)
	os.Mkdir(filepath.Join(dir, "sub"), 0755)

	p := NewOSFileSystem()
	infos, err := p.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(infos) != 3 {
		t.Fatalf("ReadDir() returned %d entries, want 3", len(infos))
	}

	regular := 0
	for _, info := range infos {
		if info.Mode().IsRegular() {
			regular++
		}
	}
	if regular != 2 {
		t.Errorf("regular files = %d, want 2", regular)
	}
}

func TestOSFileSystem_ReadDir_Nonexistent(t *testing.T) {
	p := NewOSFileSystem()

	_, err := p.ReadDir(filepath.Join(t.TempDir(), "nonexistent"))
	if err == nil {
		t.Fatal("ReadDir(nonexistent) should return error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestOSFileSystem_ReadDir_FollowsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated privileges on Windows")
	}

	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	os.WriteFile(target, []byte("x"), 0644)
	if err := os.Symlink(target, filepath.Join(dir, "link.ixt")); err != nil {
		t.Fatalf("Symlink() error = %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "dangling.ixt")); err != nil {
		t.Fatalf("Symlink() error = %v", err)
	}

	infos, err := NewOSFileSystem().ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	modes := map[string]fs.FileMode{}
	for _, info := range infos {
		modes[info.Name()] = info.Mode()
	}
	if !modes["link.ixt"].IsRegular() {
		t.Errorf("link.ixt should resolve to a regular file, mode %v", modes["link.ixt"])
	}
	if modes["dangling.ixt"].IsRegular() {
		t.Errorf("dangling.ixt should not be regular, mode %v", modes["dangling.ixt"])
	}
}

func TestOSFileSystem_Stat(t *testing.T) {
	dir := t.TempDir()

	info, err := NewOSFileSystem().Stat(dir)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if !info.IsDir() {
		t.Error("Stat(dir).IsDir() = false, want true")
	}
}
