package ports

import (
	"context"
	"iter"
)

// WatchOp is the kind of file system change observed by a Watcher.
type WatchOp uint8

const (
	// OpWrite indicates a file was modified.
	OpWrite WatchOp = iota
	// OpCreate indicates a file or directory was created.
	OpCreate
	// OpRemove indicates a file or directory was removed.
	OpRemove
	// OpRename indicates a file or directory was renamed.
	OpRename
)

// WatchEvent is a single file system change.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher observes a directory tree for changes. It backs the sync --watch
// mode that keeps the cache current while notebooks are being edited.
type Watcher interface {
	// Start begins watching the given root directory recursively.
	Start(ctx context.Context, root string) error

	// Stop stops the watcher and releases all resources.
	Stop() error

	// Events returns an iterator of file system events. The iterator ends
	// when the watcher is stopped or the context passed to Start is done.
	Events() iter.Seq[WatchEvent]
}
