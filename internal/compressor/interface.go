package compressor

import "context"

// Compressor re-encodes an oversized video toward a target size budget.
type Compressor interface {
	// Compress transcodes src into dst and returns dst on success. The
	// result is not guaranteed to hit the target size; callers must
	// re-check against their hard ceiling.
	Compress(ctx context.Context, src, dst string) (string, error)
}
