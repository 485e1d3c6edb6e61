package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Aria2 binary names per platform
const (
	Aria2BinaryName        = "aria2c"
	Aria2BinaryNameWindows = "aria2c.exe"
)

// ErrToolMissing is returned when the external downloader binary is absent
// from the tool directory. The application never installs it itself.
var ErrToolMissing = errors.New("aria2c not found in the application directory")

// Aria2BinaryFilename returns the expected binary file name for this OS
func Aria2BinaryFilename() string {
	if runtime.GOOS == OSWindows {
		return Aria2BinaryNameWindows
	}
	return Aria2BinaryName
}

// LocateAria2 resolves the aria2c executable inside the tool directory.
// It returns ErrToolMissing (wrapped with the expected path) when absent.
func LocateAria2() (string, error) {
	dir, err := ToolDir()
	if err != nil {
		return "", err
	}
	return LocateAria2In(dir)
}

// LocateAria2In resolves the aria2c executable inside the given directory
func LocateAria2In(dir string) (string, error) {
	path := filepath.Join(dir, Aria2BinaryFilename())
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: expected at %s", ErrToolMissing, path)
	}
	return path, nil
}
