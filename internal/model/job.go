package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// ModelFile describes a single Hugging Face model file parsed from a URL
type ModelFile struct {
	DownloadURL string
	Author      string
	Repo        string
	Name        string // filename without extension
	Extension   string // including the leading dot, may be empty

	// Split-series metadata. Both are zero for single-file models.
	PartIndex  int // 1-based part number within a split series
	TotalParts int
}

// Filename returns the on-disk file name for this model file
func (mf *ModelFile) Filename() string {
	return mf.Name + mf.Extension
}

// OutputSubdir returns the author/repo subdirectory the file is saved under
func (mf *ModelFile) OutputSubdir() string {
	return filepath.Join(mf.Author, mf.Repo)
}

// IsSplit returns true if the file is part of a multi-part series
func (mf *ModelFile) IsSplit() bool {
	return mf.TotalParts > 0
}

// DownloadJob represents one user-initiated invocation of the external downloader.
// A job is created on submit and released when the child process exits or the
// application closes; it is never persisted across runs.
type DownloadJob struct {
	ID          string
	URL         string
	File        *ModelFile // parsed metadata for the submitted URL
	Dir         string     // base download directory
	Connections int        // aria2c -x/-s value
	Status      JobStatus
	ExitCode    int    // child exit code, valid once finished
	LastError   string // last error message if any
	StartedAt   time.Time
	FinishedAt  time.Time
}

// OutputDir returns the directory the child process writes into
func (dj *DownloadJob) OutputDir() string {
	if dj.File == nil {
		return dj.Dir
	}
	return filepath.Join(dj.Dir, dj.File.OutputSubdir())
}

// GetDisplayTitle returns the model name, or the URL when no parse result is attached
func (dj *DownloadJob) GetDisplayTitle() string {
	if dj.File != nil && dj.File.Name != "" {
		return dj.File.Filename()
	}
	return dj.URL
}

// Summary returns the terminal log line for a finished job
func (dj *DownloadJob) Summary() string {
	switch dj.Status {
	case JobStatusCompleted:
		return fmt.Sprintf("Download finished for: %s", dj.GetDisplayTitle())
	case JobStatusStopped:
		return fmt.Sprintf("Download stopped for: %s", dj.GetDisplayTitle())
	case JobStatusError:
		if dj.LastError != "" {
			return fmt.Sprintf("Download failed for: %s (%s)", dj.GetDisplayTitle(), dj.LastError)
		}
		return fmt.Sprintf("Download failed for: %s (exit code %d)", dj.GetDisplayTitle(), dj.ExitCode)
	default:
		return ""
	}
}
