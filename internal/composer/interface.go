package composer

import (
	"context"

	"github.com/bobucross-source/video-to-article/internal/media"
	"github.com/bobucross-source/video-to-article/internal/transcriber"
)

// Composer turns a transcript and a frame manifest into a Markdown article
// that references frames by the placeholder syntax ![desc](frames/<filename>).
type Composer interface {
	Compose(ctx context.Context, transcript transcriber.Transcript, frames []media.FrameRecord, videoTitle, customInstructions string) (string, error)
}
