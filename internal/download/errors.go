package download

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Start and Stop before any process is spawned.
var (
	// ErrEmptyURL is returned for an empty or blank URL
	ErrEmptyURL = errors.New("URL is empty")

	// ErrInvalidURL wraps URL parse failures
	ErrInvalidURL = errors.New("invalid URL")

	// ErrJobActive is returned when a download is already running;
	// overlapping jobs against the same log are not allowed
	ErrJobActive = errors.New("a download is already running")

	// ErrNoActiveJob is returned by Stop when nothing is running
	ErrNoActiveJob = errors.New("no download is running")
)

// ExitError reports a non-zero exit of the external downloader. The exit code
// and the captured log lines are the only diagnostic available.
type ExitError struct {
	Code int
}

// Error returns the error message
func (e *ExitError) Error() string {
	return fmt.Sprintf("aria2c exited with code %d", e.Code)
}
