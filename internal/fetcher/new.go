package fetcher

import (
	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/pkg/executor"
)

type implFetcher struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Fetcher backed by the yt-dlp binary.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
