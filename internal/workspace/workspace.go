// Package workspace manages per-run scratch directories. A workspace owns
// every file produced during one target's pipeline run and is removed
// unconditionally when the run ends.
package workspace

import (
	"context"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/reelscribe/internal/logger"
)

type Workspace struct {
	Dir string
	log logger.Logger
}

// New creates a uniquely named scratch directory. Callers must arrange
// Cleanup via defer so removal happens on every exit path.
func New(log logger.Logger) (*Workspace, error) {
	dir, err := os.MkdirTemp("", "reel-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	return &Workspace{Dir: dir, log: log}, nil
}

// Cleanup removes the workspace and everything in it. Failures are logged,
// never surfaced; cleanup must not mask a pipeline error.
func (w *Workspace) Cleanup(ctx context.Context) {
	if err := os.RemoveAll(w.Dir); err != nil {
		w.log.Warn(ctx, "failed to remove scratch dir %s: %v", w.Dir, err)
		return
	}
	w.log.Debug(ctx, "removed scratch dir %s", w.Dir)
}
