package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GenerateText sends a text-only prompt and returns the raw response text.
func (c *implClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, genai.Text(prompt))
}

// GenerateWithAudio sends raw audio bytes plus an instruction prompt and
// returns the raw response text.
func (c *implClient) GenerateWithAudio(ctx context.Context, audio []byte, mimeType, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(audio, mimeType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	return c.generate(ctx, contents)
}

// generate calls the Gemini API, rotating API keys on 429 / quota errors.
func (c *implClient) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	attempts := len(c.apiKeys)
	if attempts == 0 {
		return "", fmt.Errorf("%w: no API keys configured", ErrGeneration)
	}
	var lastErr error

	for range attempts {
		key, keyIdx := c.activeKey()

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
		if err != nil {
			if isQuotaError(err) {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", keyIdx+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("%w: generate content: %w", ErrGeneration, err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}

	return "", fmt.Errorf("%w: all API keys exhausted: %w", ErrGeneration, lastErr)
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}
