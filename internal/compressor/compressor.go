package compressor

import (
	"context"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/reelscribe/internal/errs"
)

// probeTimeoutDivisor keeps the cheap duration probe well under the full
// transcode budget.
const probeTimeoutDivisor = 4

func (c *implCompressor) Compress(ctx context.Context, src, dst string) (string, error) {
	duration, err := c.probeDuration(ctx, src)
	if err != nil {
		return "", errs.Wrap(err, errs.CodeCompression, "probe video duration")
	}

	bitrate := videoBitrate(c.cfg.Compress.TargetMB, duration)
	c.logger.Debug(ctx, "compressing %s: duration=%.1fs target=%.1fMB video bitrate=%dbps",
		src, duration, c.cfg.Compress.TargetMB, bitrate)

	args := []string{
		"-i", src,
		"-c:v", "libx264",
		"-b:v", strconv.Itoa(bitrate),
		"-c:a", "aac",
		"-b:a", c.cfg.Compress.AudioBitrate,
		"-movflags", "+faststart",
		"-y",
		dst,
	}

	if _, err := c.executor.ExecuteTimeout(ctx, c.cfg.Compress.Timeout(), c.cfg.Tools.FFmpeg, args...); err != nil {
		return "", errs.Wrap(err, errs.CodeCompression, "ffmpeg transcode")
	}

	// Zero exit alone is not enough; the output file must exist.
	if _, err := os.Stat(dst); err != nil {
		return "", errs.Wrap(err, errs.CodeCompression, "transcode produced no output")
	}

	return dst, nil
}

// probeDuration reads the container duration in seconds via ffprobe.
func (c *implCompressor) probeDuration(ctx context.Context, src string) (float64, error) {
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		src,
	}

	out, err := c.executor.ExecuteTimeout(ctx, c.cfg.Compress.Timeout()/probeTimeoutDivisor, c.cfg.Tools.FFprobe, args...)
	if err != nil {
		return 0, err
	}

	duration, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil {
		return 0, err
	}
	if duration <= 0 {
		return 0, errs.New(errs.CodeCompression, "invalid duration %.2f", duration)
	}

	return duration, nil
}

// videoBitrate computes the video bitrate in bits per second that fits
// targetMB into durationSeconds. The 0.8 factor reserves headroom for the
// fixed audio bitrate and container overhead.
func videoBitrate(targetMB, durationSeconds float64) int {
	return int(math.Floor(targetMB * 8 * 1024 * 1024 * 0.8 / durationSeconds))
}
