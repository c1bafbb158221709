package processor

import (
	"github.com/bobucross-source/video-to-article/internal/composer"
	"github.com/bobucross-source/video-to-article/internal/config"
	"github.com/bobucross-source/video-to-article/internal/logger"
	"github.com/bobucross-source/video-to-article/internal/media"
	"github.com/bobucross-source/video-to-article/internal/transcriber"
)

type implProcessor struct {
	cfg         *config.Config
	extractor   media.Extractor
	transcriber transcriber.Transcriber
	composer    composer.Composer
	logger      logger.Logger
}

// New creates a new Processor instance
func New(cfg *config.Config, ext media.Extractor, tr transcriber.Transcriber, comp composer.Composer, log logger.Logger) Processor {
	return &implProcessor{
		cfg:         cfg,
		extractor:   ext,
		transcriber: tr,
		composer:    comp,
		logger:      log,
	}
}
