package platform

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ToolWatcher watches the tool directory and reports when the external
// downloader binary appears or disappears, so the UI can clear or show the
// missing-dependency notice without a restart.
type ToolWatcher struct {
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewToolWatcher starts watching dir and invokes onChange(present) whenever
// the aria2c binary is created or removed there.
func NewToolWatcher(dir string, onChange func(present bool)) (*ToolWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	tw := &ToolWatcher{
		watcher: watcher,
		done:    make(chan struct{}),
	}

	binary := Aria2BinaryFilename()
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(event.Name) != binary {
					continue
				}
				if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename) {
					_, err := LocateAria2In(dir)
					onChange(err == nil)
				} else if event.Op.Has(fsnotify.Remove) {
					onChange(false)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Tool watcher error: %v", err)
			case <-tw.done:
				return
			}
		}
	}()

	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	return tw, nil
}

// Close stops the watcher
func (tw *ToolWatcher) Close() error {
	close(tw.done)
	return tw.watcher.Close()
}
