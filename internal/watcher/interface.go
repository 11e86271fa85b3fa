package watcher

import "context"

// Watcher monitors an inbox directory for dropped target-list files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// Handler processes one dropped target-list file.
type Handler func(ctx context.Context, path string) error
