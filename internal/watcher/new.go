package watcher

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/caption-text/internal/logger"
	"github.com/nguyentantai21042004/caption-text/internal/scan"
)

// Options configures a Watcher.
type Options struct {
	Root       string
	OutputDir  string
	Extensions []string
	Debounce   time.Duration
}

// New creates a Watcher on every directory under opts.Root except the output folder
func New(opts Options, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Default to 2 seconds if not specified
	if opts.Debounce <= 0 {
		opts.Debounce = 2 * time.Second
	}

	w := &implWatcher{
		opts:    opts,
		handler: handler,
		logger:  log,
		watcher: watcher,
	}

	if err := w.addTree(opts.Root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return w, nil
}

// addTree watches dir and every directory below it.
func (w *implWatcher) addTree(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if w.opts.OutputDir != "" && scan.IsUnder(path, w.opts.OutputDir) {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}
