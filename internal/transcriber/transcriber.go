package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/errs"
)

// transcribePrompt is the fixed instruction paired with every uploaded video.
const transcribePrompt = "Transcribe all spoken words from this video. " +
	"If there are visible captions or text overlays, include them as well. " +
	"Output only the complete transcription text."

func (t *implTranscriber) Transcribe(ctx context.Context, videoPath, workDir string) (string, error) {
	info, err := os.Stat(videoPath)
	if err != nil {
		return "", errs.Wrap(err, errs.CodeInternal, "stat video file")
	}

	ceiling := t.cfg.Gemini.MaxUploadBytes()
	t.logger.Debug(ctx, "video size: %.2f MB", float64(info.Size())/(1024*1024))

	if info.Size() > ceiling {
		videoPath, err = t.shrink(ctx, videoPath, workDir, ceiling)
		if err != nil {
			return "", err
		}
	}

	up, err := t.remote.Upload(ctx, videoPath)
	if err != nil {
		return "", errs.Classify(err)
	}
	t.logger.Debug(ctx, "uploaded video, remote handle: %s", up.Name)

	// The remote artifact is disposed of on every path from here on,
	// success or failure. Deletion errors are swallowed.
	defer t.release(ctx, up.Name)

	if err := t.awaitActive(ctx, up.Name); err != nil {
		return "", err
	}

	text, err := t.remote.Generate(ctx, transcribePrompt, up)
	if err != nil {
		return "", errs.Classify(err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", errs.New(errs.CodeRemote, "empty transcription response")
	}
	return text, nil
}

// shrink compresses an oversized video under the upload ceiling, or fails.
func (t *implTranscriber) shrink(ctx context.Context, videoPath, workDir string, ceiling int64) (string, error) {
	if t.compressor == nil {
		return "", errs.New(errs.CodeVideoTooLarge,
			"video exceeds %d MB upload limit and no compressor is configured", t.cfg.Gemini.MaxUploadMB)
	}

	t.logger.Info(ctx, "video exceeds %d MB limit, compressing", t.cfg.Gemini.MaxUploadMB)

	dst := filepath.Join(workDir, "compressed.mp4")
	compressed, err := t.compressor.Compress(ctx, videoPath, dst)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(compressed)
	if err != nil {
		return "", errs.Wrap(err, errs.CodeCompression, "stat compressed file")
	}
	if info.Size() > ceiling {
		// Compression runs once with fixed parameters; a result that is
		// still over the ceiling is a hard failure, not a retry loop.
		return "", errs.New(errs.CodeCompression,
			"compressed file still exceeds %d MB limit (%.2f MB)",
			t.cfg.Gemini.MaxUploadMB, float64(info.Size())/(1024*1024))
	}

	return compressed, nil
}

// awaitActive polls the upload until it reaches a terminal state or the
// maximum wait elapses.
func (t *implTranscriber) awaitActive(ctx context.Context, name string) error {
	for elapsed := time.Duration(0); elapsed < t.pollMaxWait; elapsed += t.pollInterval {
		state, err := t.remote.State(ctx, name)
		if err != nil {
			return errs.Classify(err)
		}

		switch state {
		case StateActive:
			t.logger.Debug(ctx, "remote file %s is active after %s", name, elapsed)
			return nil
		case StateFailed:
			return errs.New(errs.CodeProcessingFailed, "remote processing failed for %s", name)
		}

		t.logger.Debug(ctx, "remote file %s still processing (%s elapsed)", name, elapsed)
		select {
		case <-time.After(t.pollInterval):
		case <-ctx.Done():
			return fmt.Errorf("waiting for remote processing: %w", ctx.Err())
		}
	}

	return errs.New(errs.CodeProcessingTimeout, "remote processing did not finish within %s", t.pollMaxWait)
}

func (t *implTranscriber) release(ctx context.Context, name string) {
	if err := t.remote.Delete(ctx, name); err != nil {
		t.logger.Debug(ctx, "failed to delete remote file %s: %v", name, err)
	}
}
