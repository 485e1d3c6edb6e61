package platform

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestToolWatcher_BinaryAppears(t *testing.T) {
	dir := t.TempDir()

	events := make(chan bool, 4)
	tw, err := NewToolWatcher(dir, func(present bool) {
		events <- present
	})
	if err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer tw.Close()

	path := filepath.Join(dir, Aria2BinaryFilename())
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to create stub binary: %v", err)
	}

	select {
	case present := <-events:
		if !present {
			t.Error("Expected present=true after binary creation")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for create event")
	}
}

func TestToolWatcher_BinaryRemoved(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Aria2BinaryFilename())
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatalf("Failed to create stub binary: %v", err)
	}

	events := make(chan bool, 4)
	tw, err := NewToolWatcher(dir, func(present bool) {
		events <- present
	})
	if err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer tw.Close()

	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove stub binary: %v", err)
	}

	select {
	case present := <-events:
		if present {
			t.Error("Expected present=false after binary removal")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Timed out waiting for remove event")
	}
}

func TestToolWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	events := make(chan bool, 4)
	tw, err := NewToolWatcher(dir, func(present bool) {
		events <- present
	})
	if err != nil {
		t.Fatalf("Failed to start watcher: %v", err)
	}
	defer tw.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}

	select {
	case <-events:
		t.Error("Expected no event for unrelated file")
	case <-time.After(500 * time.Millisecond):
	}
}
