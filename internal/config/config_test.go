package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 20, cfg.Gemini.MaxUploadMB)
	assert.Equal(t, int64(20*1024*1024), cfg.Gemini.MaxUploadBytes())
	assert.Equal(t, 2*time.Second, cfg.Gemini.PollInterval())
	assert.Equal(t, 60*time.Second, cfg.Gemini.PollMaxWait())
	assert.Equal(t, "200M", cfg.Download.MaxFileSize)
	assert.Equal(t, 60*time.Second, cfg.Download.Timeout())
	assert.Equal(t, 18.0, cfg.Compress.TargetMB)
	assert.Equal(t, "64k", cfg.Compress.AudioBitrate)
	assert.Equal(t, 120*time.Second, cfg.Compress.Timeout())
	assert.Equal(t, 4*time.Second, cfg.Pipeline.Pacing())
	assert.Equal(t, "8.8.8.8:53", cfg.Probe.Address)
	assert.Equal(t, 3*time.Second, cfg.Probe.Timeout())
	assert.Equal(t, "yt-dlp", cfg.Tools.YtDlp)
	assert.Equal(t, "ffmpeg", cfg.Tools.FFmpeg)
	assert.Equal(t, "ffprobe", cfg.Tools.FFprobe)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidateTargetAboveCeiling(t *testing.T) {
	cfg := &Config{}
	cfg.Compress.TargetMB = 25

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target_mb")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
gemini:
  model: "gemini-2.5-pro"
  poll_interval_seconds: 5

download:
  timeout_seconds: 30

compress:
  target_mb: 15

logging:
  level: "debug"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 5*time.Second, cfg.Gemini.PollInterval())
	assert.Equal(t, 30*time.Second, cfg.Download.Timeout())
	assert.Equal(t, 15.0, cfg.Compress.TargetMB)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unspecified fields still receive defaults.
	assert.Equal(t, 60*time.Second, cfg.Gemini.PollMaxWait())
	assert.Equal(t, "200M", cfg.Download.MaxFileSize)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	assert.Error(t, err)
}

func TestLoadReadsAPIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "test-key-123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "test-key-123", cfg.Gemini.APIKey)
}
