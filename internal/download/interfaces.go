package download

import (
	"github.com/hfget/hf-model-downloader/internal/model"
)

// Downloader defines the interface for the download service.
type Downloader interface {
	// SetUpdateCallback registers the callback invoked on job state changes
	SetUpdateCallback(func(*model.DownloadJob))

	// SetLineCallback registers the callback invoked once per captured output line
	SetLineCallback(func(string))

	// Start validates the URL and spawns exactly one aria2c child process.
	// It returns without waiting for the download to finish.
	Start(url string) (*model.DownloadJob, error)

	// Stop terminates the running child process, escalating to a hard kill
	Stop() error

	// CurrentJob returns the in-flight or last finished job, if any
	CurrentJob() (*model.DownloadJob, bool)

	// IsRunning reports whether a job is active
	IsRunning() bool

	// SetDownloadDirectory sets the base download directory
	SetDownloadDirectory(dir string)

	// SetConnections sets the aria2c connection count (clamped to 1..9)
	SetConnections(n int)
}
