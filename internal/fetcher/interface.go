package fetcher

import "context"

// Fetcher retrieves a target's video into a scratch directory.
type Fetcher interface {
	// Fetch downloads the target and returns the path of the resulting
	// video file inside dir. Success is inferred from file presence, not
	// the downloader's exit code.
	Fetch(ctx context.Context, target, dir string) (string, error)
}
