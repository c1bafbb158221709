package media

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/bobucross-source/video-to-article/internal/config"
	"github.com/bobucross-source/video-to-article/internal/logger"
)

// fakeExecutor stands in for ffmpeg/ffprobe. It answers probe calls with a
// fixed duration and creates the output file of each ffmpeg invocation.
type fakeExecutor struct {
	duration float64
	failAt   string // timestamp arg that should fail, e.g. "20"
	calls    [][]string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))

	if name == "ffprobe" {
		if len(args) > 0 && args[0] == "-version" {
			return "", nil
		}
		return fmt.Sprintf(`{"format":{"duration":"%f"}}`, f.duration), nil
	}

	if len(args) > 0 && args[0] == "-version" {
		return "", nil
	}

	for i, a := range args {
		if a == "-ss" && args[i+1] == f.failAt {
			return "", errors.New("exit status 1")
		}
	}

	// Last arg is the output path
	out := args[len(args)-1]
	if err := os.WriteFile(out, []byte("fake"), 0644); err != nil {
		return "", err
	}
	return "", nil
}

func newTestExtractor(exec *fakeExecutor) Extractor {
	return New(config.FFmpegConfig{}, exec, logger.New("error"))
}

func TestFrameTimestamps(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		interval int
		want     []int
	}{
		{"65s at 10s interval", 65, 10, []int{0, 10, 20, 30, 40, 50, 60, 64}},
		{"exact multiple", 60, 10, []int{0, 10, 20, 30, 40, 50, 59}},
		{"tail already scheduled", 11, 10, []int{0, 10}},
		{"short video", 5, 10, []int{0, 4}},
		{"one second", 1, 10, []int{0}},
		{"sub-second video", 0.5, 10, nil},
		{"fractional duration", 65.7, 10, []int{0, 10, 20, 30, 40, 50, 60, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := frameTimestamps(tt.duration, tt.interval)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("frameTimestamps(%v, %v) = %v, want %v", tt.duration, tt.interval, got, tt.want)
			}

			seen := map[int]bool{}
			prev := -1
			for _, ts := range got {
				if seen[ts] {
					t.Errorf("duplicate timestamp %d", ts)
				}
				seen[ts] = true
				if ts <= prev {
					t.Errorf("timestamps not strictly increasing: %v", got)
				}
				prev = ts
			}
		})
	}
}

func TestDuration(t *testing.T) {
	exec := &fakeExecutor{duration: 123.45}
	e := newTestExtractor(exec)

	d, err := e.Duration(context.Background(), "video.mp4")
	if err != nil {
		t.Fatalf("Duration() error = %v", err)
	}
	if d != 123.45 {
		t.Errorf("Duration() = %v, want 123.45", d)
	}
}

func TestExtractAudio(t *testing.T) {
	exec := &fakeExecutor{}
	e := newTestExtractor(exec)
	outDir := t.TempDir()

	audioPath, err := e.ExtractAudio(context.Background(), "video.mp4", outDir)
	if err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}
	if audioPath != filepath.Join(outDir, "audio.wav") {
		t.Errorf("audioPath = %v", audioPath)
	}
	if _, err := os.Stat(audioPath); err != nil {
		t.Errorf("audio file not written: %v", err)
	}

	// The extraction must request mono 16kHz PCM
	args := exec.calls[0]
	for _, want := range []string{"-vn", "pcm_s16le", "16000", "-ac"} {
		found := false
		for _, a := range args {
			if a == want {
				found = true
			}
		}
		if !found {
			t.Errorf("ffmpeg args missing %q: %v", want, args)
		}
	}
}

func TestExtractFrames(t *testing.T) {
	exec := &fakeExecutor{duration: 65}
	e := newTestExtractor(exec)
	outDir := t.TempDir()

	frames, err := e.ExtractFrames(context.Background(), "video.mp4", outDir, 10)
	if err != nil {
		t.Fatalf("ExtractFrames() error = %v", err)
	}

	if len(frames) != 8 {
		t.Fatalf("got %d frames, want 8", len(frames))
	}

	seen := map[string]bool{}
	for i, f := range frames {
		if f.Index != i {
			t.Errorf("frame %d has index %d", i, f.Index)
		}
		if seen[f.Filename] {
			t.Errorf("duplicate filename %s", f.Filename)
		}
		seen[f.Filename] = true
		if _, err := os.Stat(f.Path); err != nil {
			t.Errorf("frame file missing: %v", err)
		}
	}

	if frames[7].Timestamp != 64 {
		t.Errorf("last timestamp = %d, want 64", frames[7].Timestamp)
	}
	if frames[0].Filename != "frame_0000_0s.jpg" {
		t.Errorf("first filename = %s", frames[0].Filename)
	}
	if frames[7].Filename != "frame_0007_64s.jpg" {
		t.Errorf("last filename = %s", frames[7].Filename)
	}
}

func TestExtractFramesAbortsOnFailure(t *testing.T) {
	exec := &fakeExecutor{duration: 65, failAt: "20"}
	e := newTestExtractor(exec)

	_, err := e.ExtractFrames(context.Background(), "video.mp4", t.TempDir(), 10)
	if err == nil {
		t.Fatal("ExtractFrames() should fail when a single extraction fails")
	}
	if !errors.Is(err, ErrExternalTool) {
		t.Errorf("error should wrap ErrExternalTool, got %v", err)
	}
}
