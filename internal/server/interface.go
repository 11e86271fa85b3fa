package server

import "context"

// Server exposes the pipeline over HTTP.
type Server interface {
	// Start listens on the configured address until ctx is cancelled.
	Start(ctx context.Context) error
}
