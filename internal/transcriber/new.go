package transcriber

import (
	"github.com/bobucross-source/video-to-article/internal/gemini"
	"github.com/bobucross-source/video-to-article/internal/logger"
)

type implTranscriber struct {
	client gemini.Client
	logger logger.Logger
}

// New creates a new Transcriber instance
func New(client gemini.Client, log logger.Logger) Transcriber {
	return &implTranscriber{
		client: client,
		logger: log,
	}
}
