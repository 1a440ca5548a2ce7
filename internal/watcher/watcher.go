package watcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-text/internal/logger"
	"github.com/nguyentantai21042004/caption-text/internal/scan"
)

const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename | fsnotify.Remove

type implWatcher struct {
	opts    Options
	handler EventHandler
	logger  logger.Logger
	watcher *fsnotify.Watcher
}

// Start blocks until ctx is done, calling the handler after each settled
// burst of subtitle changes. The handler runs on this goroutine, so runs
// never overlap.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s (debounce %s)", w.opts.Root, w.opts.Debounce)

	timer := time.NewTimer(w.opts.Debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	pending := ""

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if event.Op&relevantOps == 0 {
				continue
			}
			if w.opts.OutputDir != "" && scan.IsUnder(event.Name, w.opts.OutputDir) {
				continue
			}

			if event.Op&fsnotify.Create == fsnotify.Create {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn(ctx, "Failed to watch %s: %v", event.Name, err)
					}
					continue
				}
			}

			if !scan.IsSubtitle(event.Name, w.opts.Extensions) {
				w.logger.Debug(ctx, "Ignoring non-subtitle file: %s", event.Name)
				continue
			}

			w.logger.Debug(ctx, "Subtitle change detected: %s (%s)", event.Name, event.Op)
			pending = event.Name
			timer.Reset(w.opts.Debounce)

		case <-timer.C:
			if pending == "" {
				continue
			}
			path := pending
			pending = ""
			if err := w.handler(ctx, path); err != nil {
				w.logger.Error(ctx, "Re-run after change to %s failed: %v", path, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}
