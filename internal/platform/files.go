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

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// ToolDirName is the per-user application directory holding the external downloader
const ToolDirName = "HFModelDownloader"

// ToolDir returns the per-user application directory, creating it if needed.
// This is where the user is expected to place the aria2c executable.
func ToolDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		// Fallback to the home directory, mirroring the APPDATA fallback on Windows
		base, err = os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve user config directory: %w", err)
		}
	}

	dir := filepath.Join(base, ToolDirName)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create tool directory %s: %w", dir, err)
	}
	return dir, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(homeDir, "Downloads"), nil
}

// OpenDirInManager opens the directory in the system file manager
func OpenDirInManager(dirPath string) error {
	if _, err := os.Stat(dirPath); err != nil {
		return fmt.Errorf("directory does not exist: %v", err)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openDirInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openDirInManagerLinux opens the directory on Linux
func openDirInManagerLinux(dirPath string) error {
	// Try xdg-open first (most common)
	if err := exec.Command(XDGOpenCommand, dirPath).Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
