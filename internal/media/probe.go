package media

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

// ffprobe -print_format json -show_format output, format section only.
type probeResult struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Check verifies that ffmpeg and ffprobe are runnable. Absence of either is
// a fatal startup condition, reported before any work begins.
func (e *implExtractor) Check(ctx context.Context) error {
	if _, err := e.executor.Execute(ctx, e.ffmpeg, "-version"); err != nil {
		return fmt.Errorf("%w: ffmpeg not available: %w", ErrExternalTool, err)
	}
	if _, err := e.executor.Execute(ctx, e.ffprobe, "-version"); err != nil {
		return fmt.Errorf("%w: ffprobe not available: %w", ErrExternalTool, err)
	}
	return nil
}

// Duration returns the container duration in seconds via a metadata probe.
func (e *implExtractor) Duration(ctx context.Context, videoPath string) (float64, error) {
	out, err := e.executor.Execute(ctx, e.ffprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		videoPath,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: ffprobe: %w", ErrExternalTool, err)
	}

	var probe probeResult
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("%w: parse ffprobe output: %w", ErrExternalTool, err)
	}

	duration, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse duration %q: %w", ErrExternalTool, probe.Format.Duration, err)
	}

	return duration, nil
}
