package media

import (
	"context"
	"fmt"
	"path/filepath"
)

// ExtractAudio extracts the audio track and converts it to 16kHz mono WAV,
// the format the transcription model works best with.
func (e *implExtractor) ExtractAudio(ctx context.Context, videoPath, outDir string) (string, error) {
	audioPath := filepath.Join(outDir, "audio.wav")

	e.logger.Info(ctx, "Extracting audio: %s", videoPath)

	// -vn: drop video
	// -acodec pcm_s16le: uncompressed 16-bit PCM
	// -ar 16000 -ac 1: 16kHz mono
	args := []string{
		"-i", videoPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-y",
		audioPath,
	}

	if _, err := e.executor.Execute(ctx, e.ffmpeg, args...); err != nil {
		return "", fmt.Errorf("%w: ffmpeg extract audio: %w", ErrExternalTool, err)
	}

	e.logger.Info(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
