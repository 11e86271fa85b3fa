package transcriber

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/compressor"
	"github.com/nguyentantai21042004/reelscribe/internal/config"
	"github.com/nguyentantai21042004/reelscribe/internal/logger"
)

type implTranscriber struct {
	cfg        *config.Config
	logger     logger.Logger
	remote     remote
	compressor compressor.Compressor

	pollInterval time.Duration
	pollMaxWait  time.Duration
}

// New creates a Transcriber backed by the Gemini API. comp may be nil, in
// which case oversized videos fail instead of being re-encoded.
func New(ctx context.Context, cfg *config.Config, log logger.Logger, comp compressor.Compressor) (Transcriber, error) {
	r, err := newGeminiRemote(ctx, cfg.Gemini)
	if err != nil {
		return nil, err
	}
	return newWithRemote(cfg, log, r, comp), nil
}

func newWithRemote(cfg *config.Config, log logger.Logger, r remote, comp compressor.Compressor) *implTranscriber {
	return &implTranscriber{
		cfg:          cfg,
		logger:       log,
		remote:       r,
		compressor:   comp,
		pollInterval: cfg.Gemini.PollInterval(),
		pollMaxWait:  cfg.Gemini.PollMaxWait(),
	}
}
