package ports

import (
	"context"
	"iter"
)

// WatchEvent reports a change to a file under the watched root.
type WatchEvent struct {
	// Path is the path of the file or directory that changed.
	Path string
}

// Watcher defines the interface for watching file system changes.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of file system events.
	// The iterator ends when the watcher stops or the start context is done.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a Watcher.
type WatcherFactory func() (Watcher, error)
