// Package watcher provides change notification for a listing location, so a
// listing can be regenerated whenever the location changes.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default quiet period after the last change of a
// burst of changes before the change is reported.
const DefaultDebounce = 250 * time.Millisecond

type osProvider interface {
	Stat(name string) (os.FileInfo, error)
}

// Watcher watches a location for changes. A directory location is watched
// for changes to its immediate children, any other location for changes to
// itself (by watching its parent directory).
type Watcher struct {
	watcher  *fsnotify.Watcher
	target   string
	onlyPath string
	debounce time.Duration
}

// New returns a pointer to a new [Watcher] for the given location. The
// [Watcher] needs to be closed with [Watcher.Close] after use.
func New(osHandler osProvider, location string, debounce time.Duration) (*Watcher, error) {
	info, err := osHandler.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("(watcher) failed to stat: %w", err)
	}

	w := &Watcher{
		target:   filepath.Clean(location),
		debounce: debounce,
	}

	if !info.IsDir() {
		w.onlyPath = w.target
		w.target = filepath.Dir(w.target)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("(watcher) failed to create: %w", err)
	}

	if err := fw.Add(w.target); err != nil {
		fw.Close()

		return nil, fmt.Errorf("(watcher) failed to watch %s: %w", w.target, err)
	}

	w.watcher = fw

	return w, nil
}

// Close stops watching and releases all resources of the [Watcher].
func (w *Watcher) Close() error {
	if err := w.watcher.Close(); err != nil {
		return fmt.Errorf("(watcher) failed to close: %w", err)
	}

	return nil
}

// Watch blocks until the context is cancelled or the [Watcher] is closed,
// calling onChange (on the calling goroutine) after every debounced burst of
// changes. Errors reported by the underlying watcher are passed to onError,
// if it is not nil, without stopping the watching.
func (w *Watcher) Watch(ctx context.Context, onChange func(), onError func(error)) error {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if onError != nil {
				onError(fmt.Errorf("(watcher) %w", err))
			}

		case <-timer.C:
			onChange()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}

	if w.onlyPath != "" && filepath.Clean(event.Name) != w.onlyPath {
		return false
	}

	return true
}
