package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultDownloadDir(t *testing.T) {
	dir, err := DefaultDownloadDir()
	if err != nil {
		t.Fatalf("DefaultDownloadDir() returned error: %v", err)
	}

	if !strings.HasSuffix(dir, DownloadDirName) {
		t.Errorf("Expected download dir to end with '%s', got '%s'", DownloadDirName, dir)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir() returned error: %v", err)
	}
	if !strings.HasPrefix(dir, home) {
		t.Errorf("Expected download dir under home '%s', got '%s'", home, dir)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "downloads")

	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Fatalf("CreateDirectoryIfNotExists() returned error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Expected directory to exist: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Calling again on an existing directory is a no-op.
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		t.Errorf("Second call returned error: %v", err)
	}
}

func TestOpenFolderInManager_MissingFolder(t *testing.T) {
	err := OpenFolderInManager(filepath.Join(t.TempDir(), "does-not-exist"))
	if err == nil {
		t.Error("Expected error for missing folder")
	}
}

func TestOpenFolderInManager_NotADirectory(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(file, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := OpenFolderInManager(file)
	if err == nil {
		t.Error("Expected error for non-directory path")
	}
}
