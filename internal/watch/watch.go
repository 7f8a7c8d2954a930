// Package watch re-runs a handler when scenario exports change on
// disk. Editors write files in bursts, so events are debounced per
// path before the handler fires.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a path must stay quiet before the
// handler runs.
const DefaultDebounce = 500 * time.Millisecond

// Handler is called with the path of a changed scenario export.
type Handler func(path string)

// Watcher watches one directory of scenario exports.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   *slog.Logger
	handler  Handler

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New validates dir and builds a watcher. A zero debounce uses
// DefaultDebounce.
func New(dir string, debounce time.Duration, logger *slog.Logger, handler Handler) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot watch %s: not a directory", dir)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:      dir,
		debounce: debounce,
		logger:   logger,
		handler:  handler,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Run blocks, dispatching debounced change events to the handler
// until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.logger.Info("watching scenario directory", "dir", w.dir, "debounce", w.debounce)

	fired := make(chan string)
	done := make(chan struct{})
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return ctx.Err()
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if filepath.Ext(event.Name) != ".json" {
				continue
			}
			w.schedule(event.Name, fired, done)
		case path := <-fired:
			w.forget(path)
			w.logger.Debug("scenario changed", "path", path)
			w.handler(path)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// schedule arms (or re-arms) the debounce timer for path. A timer that
// fires after Run has returned must not block on the fired channel.
func (w *Watcher) schedule(path string, fired chan<- string, done <-chan struct{}) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		select {
		case fired <- path:
		case <-done:
		}
	})
}

func (w *Watcher) forget(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.timers, path)
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, t := range w.timers {
		t.Stop()
	}
}
