package pipeline

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/fetcher"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/internal/transcriber"
	"github.com/nguyentantai21042004/reelscribe/internal/workspace"
)

type implPipeline struct {
	cfg         *config.Config
	logger      logger.Logger
	fetcher     fetcher.Fetcher
	transcriber transcriber.Transcriber

	// Seams for tests.
	newWorkspace func(logger.Logger) (*workspace.Workspace, error)
	pause        func(context.Context, time.Duration) error
}

func New(cfg *config.Config, l logger.Logger, f fetcher.Fetcher, t transcriber.Transcriber) Pipeline {
	return &implPipeline{
		cfg:          cfg,
		logger:       l,
		fetcher:      f,
		transcriber:  t,
		newWorkspace: workspace.New,
		pause:        sleepContext,
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
