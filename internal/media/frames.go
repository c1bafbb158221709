package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// frameTimestamps builds the capture schedule: 0, interval, 2*interval, ...
// strictly below floor(duration), then floor(duration)-1 unless already
// present, so the tail of the video is always covered even when the duration
// is not a multiple of the interval. Timestamps are unique and increasing.
func frameTimestamps(duration float64, interval int) []int {
	var timestamps []int
	limit := int(duration)
	for ts := 0; ts < limit; ts += interval {
		timestamps = append(timestamps, ts)
	}

	last := limit - 1
	if last >= 0 && (len(timestamps) == 0 || timestamps[len(timestamps)-1] != last) {
		timestamps = append(timestamps, last)
	}

	return timestamps
}

// frameFilename is deterministic given index and timestamp, which lets the
// composer and renderer resolve placeholder references purely by name.
func frameFilename(index, timestamp int) string {
	return fmt.Sprintf("frame_%04d_%ds.jpg", index, timestamp)
}

// ExtractFrames captures one JPEG per scheduled timestamp under
// outDir/frames. A single extraction failure aborts the whole run; partial
// results are not recovered.
func (e *implExtractor) ExtractFrames(ctx context.Context, videoPath, outDir string, interval int) ([]FrameRecord, error) {
	framesDir := filepath.Join(outDir, "frames")
	if err := os.MkdirAll(framesDir, 0755); err != nil {
		return nil, fmt.Errorf("create frames dir: %w", err)
	}

	duration, err := e.Duration(ctx, videoPath)
	if err != nil {
		return nil, fmt.Errorf("probe duration: %w", err)
	}

	timestamps := frameTimestamps(duration, interval)
	e.logger.Info(ctx, "Extracting %d frames (duration %.1fs, interval %ds)", len(timestamps), duration, interval)

	frames := make([]FrameRecord, 0, len(timestamps))
	for i, ts := range timestamps {
		filename := frameFilename(i, ts)
		framePath := filepath.Join(framesDir, filename)

		args := []string{
			"-i", videoPath,
			"-ss", strconv.Itoa(ts),
			"-frames:v", "1",
			"-q:v", "2",
			"-y",
			framePath,
		}

		if _, err := e.executor.Execute(ctx, e.ffmpeg, args...); err != nil {
			return nil, fmt.Errorf("%w: ffmpeg extract frame at %ds: %w", ErrExternalTool, ts, err)
		}

		frames = append(frames, FrameRecord{
			Index:     i,
			Timestamp: ts,
			Filename:  filename,
			Path:      framePath,
		})
	}

	e.logger.Info(ctx, "Extracted %d frames to %s", len(frames), framesDir)
	return frames, nil
}
