package gemini

import (
	"errors"
	"sync"

	"github.com/bobucross-source/video-to-article/internal/logger"
)

// ErrGeneration marks any failure of the generation service: network, quota
// exhaustion across all keys, malformed request. Fatal to the current
// request; never retried beyond key rotation.
var ErrGeneration = errors.New("generation service failed")

type implClient struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	// In watch mode one client is shared across concurrent conversions;
	// mu guards the rotation cursor.
	mu         sync.Mutex
	currentKey int
}

// New creates a Client that rotates through the supplied API keys on quota
// errors. At least one key is required; presence is checked by the caller as
// a startup precondition.
func New(apiKeys []string, model string, log logger.Logger) Client {
	return &implClient{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}

// activeKey returns the key the next attempt should use.
func (c *implClient) activeKey() (string, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.apiKeys[c.currentKey], c.currentKey
}

// rotateKey advances the rotation cursor to the next key.
func (c *implClient) rotateKey() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}
