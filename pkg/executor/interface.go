package executor

import "context"

// Executor defines the interface for executing external commands.
// The media extractor talks to ffmpeg/ffprobe exclusively through it,
// so tests can substitute a fake instead of a real binary.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
