package model

import (
	"path/filepath"
	"testing"
)

func TestModelFile_Filename(t *testing.T) {
	tests := []struct {
		name      string
		extension string
		expected  string
	}{
		{"model-q4", ".gguf", "model-q4.gguf"},
		{"tokenizer", ".json", "tokenizer.json"},
		{"LICENSE", "", "LICENSE"},
	}

	for _, test := range tests {
		mf := &ModelFile{Name: test.name, Extension: test.extension}
		if result := mf.Filename(); result != test.expected {
			t.Errorf("Filename() with name='%s', ext='%s' = '%s', expected '%s'",
				test.name, test.extension, result, test.expected)
		}
	}
}

func TestModelFile_OutputSubdir(t *testing.T) {
	mf := &ModelFile{Author: "org", Repo: "model-repo"}
	expected := filepath.Join("org", "model-repo")
	if result := mf.OutputSubdir(); result != expected {
		t.Errorf("OutputSubdir() = '%s', expected '%s'", result, expected)
	}
}

func TestModelFile_IsSplit(t *testing.T) {
	single := &ModelFile{Name: "model"}
	if single.IsSplit() {
		t.Error("Expected single file not to be split")
	}

	part := &ModelFile{Name: "model-00001-of-00003", PartIndex: 1, TotalParts: 3}
	if !part.IsSplit() {
		t.Error("Expected series part to be split")
	}
}

func TestDownloadJob_OutputDir(t *testing.T) {
	job := &DownloadJob{
		Dir: "/downloads",
		File: &ModelFile{
			Author: "org",
			Repo:   "model",
		},
	}

	expected := filepath.Join("/downloads", "org", "model")
	if result := job.OutputDir(); result != expected {
		t.Errorf("OutputDir() = '%s', expected '%s'", result, expected)
	}

	// No parse result attached: fall back to the base directory
	job.File = nil
	if result := job.OutputDir(); result != "/downloads" {
		t.Errorf("OutputDir() without file = '%s', expected '/downloads'", result)
	}
}

func TestDownloadJob_GetDisplayTitle(t *testing.T) {
	job := &DownloadJob{
		URL:  "https://huggingface.co/org/model/resolve/main/model.gguf",
		File: &ModelFile{Name: "model", Extension: ".gguf"},
	}

	if result := job.GetDisplayTitle(); result != "model.gguf" {
		t.Errorf("GetDisplayTitle() = '%s', expected 'model.gguf'", result)
	}

	job.File = nil
	if result := job.GetDisplayTitle(); result != job.URL {
		t.Errorf("GetDisplayTitle() without file = '%s', expected URL", result)
	}
}

func TestDownloadJob_Summary(t *testing.T) {
	tests := []struct {
		status   JobStatus
		exitCode int
		expected string
	}{
		{JobStatusCompleted, 0, "Download finished for: model.gguf"},
		{JobStatusStopped, 0, "Download stopped for: model.gguf"},
		{JobStatusError, 3, "Download failed for: model.gguf (exit code 3)"},
		{JobStatusRunning, 0, ""},
	}

	for _, test := range tests {
		job := &DownloadJob{
			Status:   test.status,
			ExitCode: test.exitCode,
			File:     &ModelFile{Name: "model", Extension: ".gguf"},
		}
		if result := job.Summary(); result != test.expected {
			t.Errorf("Summary() with status=%s = '%s', expected '%s'", test.status, result, test.expected)
		}
	}
}

func TestDownloadJob_Summary_LastError(t *testing.T) {
	job := &DownloadJob{
		Status:    JobStatusError,
		LastError: "spawn failed",
		File:      &ModelFile{Name: "model", Extension: ".gguf"},
	}

	expected := "Download failed for: model.gguf (spawn failed)"
	if result := job.Summary(); result != expected {
		t.Errorf("Summary() = '%s', expected '%s'", result, expected)
	}
}
