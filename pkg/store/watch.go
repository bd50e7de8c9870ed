package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watchdog detects external modification of the schedule document by
// comparing file modification times. It is polled once per interaction
// cycle; this process treats itself as sole writer with a best-effort
// staleness check, not a lock.
type Watchdog struct {
	Path    string
	lastMod time.Time
}

// Mark records the document's current modification time as "ours"; call
// it right after a load or save.
func (w *Watchdog) Mark() {
	if info, err := os.Stat(w.Path); err == nil {
		w.lastMod = info.ModTime()
	}
}

// Changed reports whether the document was modified on disk since the
// last Mark. A missing file counts as unchanged.
func (w *Watchdog) Changed() bool {
	info, err := os.Stat(w.Path)
	if err != nil {
		return false
	}
	return info.ModTime().After(w.lastMod)
}

// Watch streams a notification each time the document changes on disk,
// until ctx is cancelled. Rapid write bursts are coalesced. The channel
// is closed when ctx ends or the watcher fails unrecoverably.
func Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure directory: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	// Watch the directory, not the file: the rename-into-place save
	// replaces the inode a file watch would be pinned to.
	if err := watcher.Add(dir); err != nil {
		werr := watcher.Close()
		return nil, errors.Join(fmt.Errorf("store: watch %s: %w", dir, err), werr)
	}

	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		var debounce *time.Timer
		notify := func() {
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(100*time.Millisecond, func() {
				select {
				case events <- struct{}{}:
				default:
					// Consumer not ready; it will catch up on its next poll.
				}
			})
		}

		for {
			select {
			case <-ctx.Done():
				if debounce != nil {
					debounce.Stop()
				}
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watch: %v\n", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != filepath.Clean(path) {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					notify()
				}
			}
		}
	}()
	return events, nil
}
