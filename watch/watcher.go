// Package watch re-runs schema materialization when SDL source files change.
package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RunFunc is invoked after each debounced batch of file events, and once at
// startup. Errors are logged by the caller's fn, not by the watcher.
type RunFunc func(ctx context.Context)

// Run watches the directories containing the given schema files and invokes
// fn after changes settle for the debounce period. It blocks until ctx is
// cancelled. Watching directories rather than files keeps editors that
// replace files on save (rename + create) from silently detaching the watch.
func Run(ctx context.Context, paths []string, debounce time.Duration, logger *slog.Logger, fn RunFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	for _, p := range paths {
		dir := filepath.Dir(p)
		if watched[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return err
		}
		watched[dir] = true
		logger.Debug("Watching directory", "dir", dir)
	}

	relevant := make(map[string]bool, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		relevant[abs] = true
	}

	fn(ctx)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove) {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil {
				abs = event.Name
			}
			if !relevant[abs] && !isSDL(event.Name) {
				continue
			}
			logger.Debug("Schema change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			fn(ctx)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error", "error", err)
		}
	}
}

// isSDL reports whether a path looks like a GraphQL SDL file. New files
// created under a watched directory are picked up through this check.
func isSDL(path string) bool {
	switch filepath.Ext(path) {
	case ".graphql", ".graphqls":
		info, err := os.Stat(path)
		return err != nil || !info.IsDir()
	}
	return false
}
