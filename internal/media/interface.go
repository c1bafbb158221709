package media

import "context"

// Extractor defines the interface for extracting timed artifacts from a video
// file. All operations shell out to ffmpeg/ffprobe through an executor.
type Extractor interface {
	// Check verifies that both ffmpeg and ffprobe are runnable.
	Check(ctx context.Context) error
	// Duration returns the container duration in seconds.
	Duration(ctx context.Context, videoPath string) (float64, error)
	// ExtractAudio writes a mono 16kHz 16-bit PCM WAV under outDir and
	// returns its path.
	ExtractAudio(ctx context.Context, videoPath, outDir string) (string, error)
	// ExtractFrames writes one JPEG per timestamp under outDir/frames and
	// returns the records in chronological order.
	ExtractFrames(ctx context.Context, videoPath, outDir string, interval int) ([]FrameRecord, error)
}
