package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events editors and exporters emit for
// a single save.
const watchDebounce = 100 * time.Millisecond

// WatchFunc receives the outcome of each re-parse.
type WatchFunc func(records []Record, err error)

// Watch parses path once, then again every time the file is written or
// (re)created, handing each outcome to fn. It blocks until
// ctx is done and returns nil in that case.
//
// The parent directory is watched rather than the file so that exporters
// which replace the file atomically keep being observed.
func Watch(ctx context.Context, path string, fn WatchFunc, opts ...Option) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	fn(Parse(path, opts...))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
			} else {
				timer.Reset(watchDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fn(Parse(path, opts...))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.DebugContext(ctx, "snapshot watcher error", slog.String("path", abs), slog.String("err", err.Error()))
		}
	}
}
