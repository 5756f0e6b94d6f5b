// Package watcher reports changes to a single file, debounced.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher calls a function after a file has been written or replaced.
// Bursts of events within the debounce window produce one call.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func(string)
	log      *slog.Logger

	mu    sync.Mutex
	timer *time.Timer
}

// New watches path. The parent directory is watched so that editors that
// save by renaming over the file are still seen.
func New(path string, debounce time.Duration, onChange func(string)) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(absPath)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &FileWatcher{
		watcher:  w,
		path:     absPath,
		debounce: debounce,
		onChange: onChange,
		log:      slog.New(slog.DiscardHandler),
	}, nil
}

// SetLogger sets where watcher errors are reported.
func (fw *FileWatcher) SetLogger(l *slog.Logger) {
	if l != nil {
		fw.log = l
	}
}

// Run delivers change notifications until ctx is done or the watcher is
// closed.
func (fw *FileWatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			fw.stopTimer()
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				fw.schedule()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watcher error", "path", fw.path, "err", err)
		}
	}
}

func (fw *FileWatcher) schedule() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, func() {
		fw.onChange(fw.path)
	})
}

func (fw *FileWatcher) stopTimer() {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	fw.stopTimer()
	return fw.watcher.Close()
}
