package compressor

import (
	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
	"github.com/nguyentantai21042004/reelscribe/pkg/executor"
)

type implCompressor struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Compressor backed by ffprobe and ffmpeg.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Compressor {
	return &implCompressor{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}
