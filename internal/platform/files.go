package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// DownloadDirName is the per-user download folder created under the home
// directory when no download path is configured.
const DownloadDirName = "CactusDownloads"

// File manager names tried on Linux when xdg-open is unavailable.
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// DefaultDownloadDir returns the default download directory under the user's
// home directory.
func DefaultDownloadDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, DownloadDirName), nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// OpenFolderInManager opens the given directory in the system file manager.
func OpenFolderInManager(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openFolderMacOS(absPath)
	case OSWindows:
		return openFolderWindows(absPath)
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderMacOS opens a folder in Finder on macOS
func openFolderMacOS(dirPath string) error {
	cmd := exec.Command(OpenCommand, dirPath)
	return cmd.Run()
}

// openFolderWindows opens a folder in Explorer on Windows
func openFolderWindows(dirPath string) error {
	cmd := exec.Command(ExplorerCommand, dirPath)
	return cmd.Run()
}

// openFolderLinux opens a folder with xdg-open, falling back to common file
// managers when xdg-open is not installed.
func openFolderLinux(dirPath string) error {
	cmd := exec.Command(XDGOpenCommand, dirPath)
	if err := cmd.Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dirPath)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
