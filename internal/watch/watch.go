// Package watch reloads a sketch file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/1broseidon/sketch/internal/sketch"
)

// DefaultDebounce coalesces the burst of events an editor save produces.
const DefaultDebounce = 100 * time.Millisecond

// Handler receives every reparse. Exactly one of w and err is non-nil.
type Handler func(w *sketch.Window, err error)

// Watcher watches one sketch file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	logger   *slog.Logger
	debounce time.Duration
}

// New starts watching the directory containing path. Watching the directory
// keeps the watch alive across editors that save by rename.
func New(path string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	return &Watcher{
		watcher:  fw,
		path:     abs,
		logger:   logger,
		debounce: DefaultDebounce,
	}, nil
}

// SetDebounce sets the quiet period before a change is reloaded.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Run reparses the file after each change and passes the result to fn. It
// blocks until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context, fn Handler) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	name := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.logger.Debug("sketch changed", "file", w.path, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "error", err)

		case <-timer.C:
			win, err := sketch.Load(w.path)
			if err != nil {
				w.logger.Warn("reload failed", "file", w.path, "error", err)
				fn(nil, err)
				continue
			}
			w.logger.Info("sketch reloaded", "file", w.path, "title", win.Title())
			fn(win, nil)
		}
	}
}

// Close stops the watcher; a pending Run returns.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
