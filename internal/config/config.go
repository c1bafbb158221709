package config

import (
	"fmt"
	"os"
	"strings"
)

// MinInterval and MaxInterval bound the screenshot interval in seconds.
const (
	MinInterval     = 3
	MaxInterval     = 30
	DefaultInterval = 10
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Frames      FramesConfig      `yaml:"frames"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeminiConfig struct {
	// APIKeys may hold several keys; the client rotates on quota errors.
	// GEMINI_API_KEY / GEMINI_API_KEYS env vars take precedence (see ResolveAPIKeys).
	APIKeys         []string `yaml:"api_keys"`
	TranscribeModel string   `yaml:"transcribe_model"`
	ArticleModel    string   `yaml:"article_model"`
}

type FFmpegConfig struct {
	FFmpegPath  string `yaml:"ffmpeg_path"`
	FFprobePath string `yaml:"ffprobe_path"`
}

type FramesConfig struct {
	Interval int `yaml:"interval"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Default returns a Config with all defaults applied, for running without a
// config file.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.Validate()
	return cfg
}

// Validate applies defaults and checks the bounded settings.
func (c *Config) Validate() error {
	if c.Gemini.TranscribeModel == "" {
		c.Gemini.TranscribeModel = "gemini-2.5-flash"
	}
	if c.Gemini.ArticleModel == "" {
		c.Gemini.ArticleModel = "gemini-2.5-flash"
	}
	if c.FFmpeg.FFmpegPath == "" {
		c.FFmpeg.FFmpegPath = "ffmpeg"
	}
	if c.FFmpeg.FFprobePath == "" {
		c.FFmpeg.FFprobePath = "ffprobe"
	}
	if c.Frames.Interval == 0 {
		c.Frames.Interval = DefaultInterval
	}
	if c.Frames.Interval < MinInterval || c.Frames.Interval > MaxInterval {
		return fmt.Errorf("frames.interval must be between %d and %d, got %d",
			MinInterval, MaxInterval, c.Frames.Interval)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// ValidateWatch checks the extra settings required by watch mode.
func (c *Config) ValidateWatch() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required in watch mode")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required in watch mode")
	}
	return nil
}

// ResolveAPIKeys returns the Gemini API keys to use: GEMINI_API_KEYS
// (comma-separated) or GEMINI_API_KEY from the environment override the
// config file. The returned slice may be empty; presence is a startup
// precondition checked by the caller before any work begins.
func (c *Config) ResolveAPIKeys() []string {
	if v := os.Getenv("GEMINI_API_KEYS"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			return keys
		}
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		return []string{v}
	}
	return c.Gemini.APIKeys
}
