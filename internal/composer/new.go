package composer

import (
	"github.com/bobucross-source/video-to-article/internal/gemini"
	"github.com/bobucross-source/video-to-article/internal/logger"
)

type implComposer struct {
	client gemini.Client
	logger logger.Logger
}

// New creates a new Composer instance
func New(client gemini.Client, log logger.Logger) Composer {
	return &implComposer{
		client: client,
		logger: log,
	}
}
