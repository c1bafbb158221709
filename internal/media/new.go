package media

import (
	"github.com/bobucross-source/video-to-article/internal/config"
	"github.com/bobucross-source/video-to-article/internal/logger"
	"github.com/bobucross-source/video-to-article/pkg/executor"
)

type implExtractor struct {
	ffmpeg   string
	ffprobe  string
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Extractor instance
func New(cfg config.FFmpegConfig, exec executor.Executor, log logger.Logger) Extractor {
	ffmpeg := cfg.FFmpegPath
	if ffmpeg == "" {
		ffmpeg = "ffmpeg"
	}
	ffprobe := cfg.FFprobePath
	if ffprobe == "" {
		ffprobe = "ffprobe"
	}

	return &implExtractor{
		ffmpeg:   ffmpeg,
		ffprobe:  ffprobe,
		executor: exec,
		logger:   log,
	}
}
