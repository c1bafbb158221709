package processor

import (
	"context"

	"github.com/bobucross-source/video-to-article/internal/renderer"
	"github.com/bobucross-source/video-to-article/internal/transcriber"
)

// Processor runs the whole conversion pipeline for one video file.
type Processor interface {
	Process(ctx context.Context, videoPath string, opts Options) (Result, error)
}

// Options are the per-request tuning parameters.
type Options struct {
	// Interval is the screenshot spacing in seconds. Zero means the
	// configured default; out-of-range values are rejected.
	Interval int
	// Instructions is optional free text appended to the article prompt.
	Instructions string
}

// Result is what the caller gets back after the working directory is gone.
// Markdown and HTML are self-contained. Segments are computed before
// cleanup; their image paths point into the removed working directory, so
// callers that need live image files must use the HTML rendering instead.
type Result struct {
	Title        string
	Markdown     string
	HTML         string
	Segments     []renderer.Segment
	FrameCount   int
	SegmentCount int
	Source       transcriber.Source
}
