package pipeline

import (
	"context"

	"github.com/nguyentantai21042004/reelscribe/internal/report"
)

// Pipeline runs the download-transcribe flow for a batch of targets.
type Pipeline interface {
	// Run processes targets sequentially and returns a batch report in
	// submission order. A fatal failure (credentials rejected, network
	// gone) aborts the run; the partial batch is returned alongside the
	// aborting error.
	Run(ctx context.Context, targets []string) (*report.Batch, error)
}
