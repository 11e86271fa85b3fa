package fetcher

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/reelscribe/internal/errs"
)

// videoExtensions are the container formats yt-dlp is expected to produce.
// Ancillary files (thumbnails, .part files, subtitles) are never candidates.
var videoExtensions = []string{".mp4", ".mkv", ".webm", ".mov", ".flv"}

func (f *implFetcher) Fetch(ctx context.Context, target, dir string) (string, error) {
	args := []string{
		"-P", dir,
		"--max-filesize", f.cfg.Download.MaxFileSize,
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		target,
	}

	f.logger.Debug(ctx, "running %s for %s", f.cfg.Tools.YtDlp, target)

	// Timeout, non-zero exit and partial output all fold into the same "no
	// file produced" outcome below: the directory scan decides, not the
	// exit code.
	if _, err := f.executor.ExecuteTimeout(ctx, f.cfg.Download.Timeout(), f.cfg.Tools.YtDlp, args...); err != nil {
		f.logger.Debug(ctx, "yt-dlp exited with error: %v", err)
	}

	path, err := newestVideo(dir)
	if err != nil {
		f.logger.Debug(ctx, "no video file found in %s after download", dir)
		return "", errs.Wrap(err, errs.CodeDownloadFailed, "download produced no video file")
	}

	f.logger.Debug(ctx, "downloaded video: %s", path)
	return path, nil
}

// newestVideo returns the most recently modified recognized video file in dir.
func newestVideo(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var best string
	var bestMod time.Time
	for _, entry := range entries {
		if entry.IsDir() || !isVideoFile(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if best == "" || info.ModTime().After(bestMod) {
			best = filepath.Join(dir, entry.Name())
			bestMod = info.ModTime()
		}
	}

	if best == "" {
		return "", os.ErrNotExist
	}
	return best, nil
}

func isVideoFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, v := range videoExtensions {
		if ext == v {
			return true
		}
	}
	return false
}
