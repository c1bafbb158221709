package gemini

import "context"

// Client defines the interface for text generation against the Gemini API.
// The transcriber and composer each hold their own Client so tests can
// substitute fakes without touching the network.
type Client interface {
	// GenerateText sends a text-only prompt and returns the raw response text.
	GenerateText(ctx context.Context, prompt string) (string, error)
	// GenerateWithAudio sends raw audio bytes plus an instruction prompt and
	// returns the raw response text.
	GenerateWithAudio(ctx context.Context, audio []byte, mimeType, prompt string) (string, error)
}
