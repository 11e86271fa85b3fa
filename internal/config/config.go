package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Gemini   GeminiConfig   `yaml:"gemini"`
	Download DownloadConfig `yaml:"download"`
	Compress CompressConfig `yaml:"compress"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Probe    ProbeConfig    `yaml:"probe"`
	Tools    ToolsConfig    `yaml:"tools"`
	Watch    WatchConfig    `yaml:"watch"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type GeminiConfig struct {
	// APIKey is populated from the GEMINI_API_KEY environment variable,
	// never from the config file.
	APIKey              string `yaml:"-"`
	Model               string `yaml:"model"`
	MaxUploadMB         int    `yaml:"max_upload_mb"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
	PollMaxWaitSeconds  int    `yaml:"poll_max_wait_seconds"`
}

type DownloadConfig struct {
	MaxFileSize    string `yaml:"max_file_size"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type CompressConfig struct {
	TargetMB       float64 `yaml:"target_mb"`
	AudioBitrate   string  `yaml:"audio_bitrate"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

type PipelineConfig struct {
	PacingSeconds int `yaml:"pacing_seconds"`
}

type ProbeConfig struct {
	Address        string `yaml:"address"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type ToolsConfig struct {
	YtDlp   string `yaml:"yt_dlp"`
	FFmpeg  string `yaml:"ffmpeg"`
	FFprobe string `yaml:"ffprobe"`
}

type WatchConfig struct {
	Dir string `yaml:"dir"`
}

type ServerConfig struct {
	Address string `yaml:"address"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

func (g GeminiConfig) PollInterval() time.Duration {
	return time.Duration(g.PollIntervalSeconds) * time.Second
}

func (g GeminiConfig) PollMaxWait() time.Duration {
	return time.Duration(g.PollMaxWaitSeconds) * time.Second
}

// MaxUploadBytes returns the hard remote upload ceiling in bytes.
func (g GeminiConfig) MaxUploadBytes() int64 {
	return int64(g.MaxUploadMB) * 1024 * 1024
}

func (d DownloadConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

func (c CompressConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (p PipelineConfig) Pacing() time.Duration {
	return time.Duration(p.PacingSeconds) * time.Second
}

func (p ProbeConfig) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

func (c *Config) Validate() error {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.MaxUploadMB == 0 {
		// Gemini free-tier upload ceiling.
		c.Gemini.MaxUploadMB = 20
	}
	if c.Gemini.PollIntervalSeconds == 0 {
		c.Gemini.PollIntervalSeconds = 2
	}
	if c.Gemini.PollMaxWaitSeconds == 0 {
		c.Gemini.PollMaxWaitSeconds = 60
	}
	if c.Download.MaxFileSize == "" {
		c.Download.MaxFileSize = "200M"
	}
	if c.Download.TimeoutSeconds == 0 {
		c.Download.TimeoutSeconds = 60
	}
	if c.Compress.TargetMB == 0 {
		// Under the upload ceiling to leave margin for estimation error.
		c.Compress.TargetMB = 18
	}
	if c.Compress.TargetMB >= float64(c.Gemini.MaxUploadMB) {
		return fmt.Errorf("compress.target_mb (%.1f) must be below gemini.max_upload_mb (%d)",
			c.Compress.TargetMB, c.Gemini.MaxUploadMB)
	}
	if c.Compress.AudioBitrate == "" {
		c.Compress.AudioBitrate = "64k"
	}
	if c.Compress.TimeoutSeconds == 0 {
		c.Compress.TimeoutSeconds = 120
	}
	if c.Pipeline.PacingSeconds == 0 {
		// Free tier: 15 requests/minute.
		c.Pipeline.PacingSeconds = 4
	}
	if c.Probe.Address == "" {
		c.Probe.Address = "8.8.8.8:53"
	}
	if c.Probe.TimeoutSeconds == 0 {
		c.Probe.TimeoutSeconds = 3
	}
	if c.Tools.YtDlp == "" {
		c.Tools.YtDlp = "yt-dlp"
	}
	if c.Tools.FFmpeg == "" {
		c.Tools.FFmpeg = "ffmpeg"
	}
	if c.Tools.FFprobe == "" {
		c.Tools.FFprobe = "ffprobe"
	}
	if c.Watch.Dir == "" {
		c.Watch.Dir = "data/inbox"
	}
	if c.Server.Address == "" {
		c.Server.Address = "127.0.0.1:5000"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	return nil
}

// readAPIKey pulls the service credential from the environment.
func (c *Config) readAPIKey() {
	c.Gemini.APIKey = os.Getenv("GEMINI_API_KEY")
}
