package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once a burst of subtitle changes has settled.
// filePath is the last subtitle file that changed.
type EventHandler func(ctx context.Context, filePath string) error
