package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bobucross-source/video-to-article/internal/config"
	"github.com/bobucross-source/video-to-article/internal/renderer"
)

// Process runs the four pipeline stages for one video: audio extraction,
// frame extraction, transcription, article generation, then rendering. All
// intermediate artifacts live in a per-request temporary directory that is
// removed on every exit path, success or failure. Stages are strictly
// sequential; the first error aborts the rest.
func (p *implProcessor) Process(ctx context.Context, videoPath string, opts Options) (Result, error) {
	startTime := time.Now()
	title := strings.TrimSuffix(filepath.Base(videoPath), filepath.Ext(videoPath))

	interval := opts.Interval
	if interval == 0 {
		interval = p.cfg.Frames.Interval
	}
	if interval < config.MinInterval || interval > config.MaxInterval {
		return Result{}, fmt.Errorf("interval must be between %d and %d, got %d",
			config.MinInterval, config.MaxInterval, interval)
	}

	workDir, err := p.createWorkDir()
	if err != nil {
		return Result{}, fmt.Errorf("create working directory: %w", err)
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			p.logger.Warn(ctx, "Failed to remove working directory %s: %v", workDir, err)
		}
	}()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Converting video: %s", videoPath)
	p.logger.Info(ctx, "Working directory: %s", workDir)
	p.logger.Info(ctx, "========================================")

	// Stage 1: audio
	p.logger.Info(ctx, "[1/4] Extracting audio...")
	audioPath, err := p.extractor.ExtractAudio(ctx, videoPath, workDir)
	if err != nil {
		return Result{}, fmt.Errorf("extract audio: %w", err)
	}

	// Stage 2: frames
	p.logger.Info(ctx, "[2/4] Extracting frames...")
	frames, err := p.extractor.ExtractFrames(ctx, videoPath, workDir, interval)
	if err != nil {
		return Result{}, fmt.Errorf("extract frames: %w", err)
	}

	// Stage 3: transcription
	p.logger.Info(ctx, "[3/4] Transcribing audio...")
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: %w", err)
	}

	// Stage 4: article
	p.logger.Info(ctx, "[4/4] Generating article...")
	article, err := p.composer.Compose(ctx, transcript, frames, title, opts.Instructions)
	if err != nil {
		return Result{}, fmt.Errorf("compose article: %w", err)
	}

	// Render the derived views while the frame files still exist.
	framesDir := filepath.Join(workDir, "frames")
	html, err := renderer.RenderHTML(article, framesDir)
	if err != nil {
		return Result{}, fmt.Errorf("render html: %w", err)
	}
	segments := renderer.DisplaySegments(article, framesDir)

	p.logger.Info(ctx, "Conversion completed in %s (%d frames, %d transcript segments)",
		time.Since(startTime).Round(time.Millisecond), len(frames), len(transcript.Segments))

	return Result{
		Title:        title,
		Markdown:     article,
		HTML:         html,
		Segments:     segments,
		FrameCount:   len(frames),
		SegmentCount: len(transcript.Segments),
		Source:       transcript.Source,
	}, nil
}

func (p *implProcessor) createWorkDir() (string, error) {
	base := p.cfg.Paths.Temp
	if base != "" {
		if err := os.MkdirAll(base, 0755); err != nil {
			return "", err
		}
	}
	return os.MkdirTemp(base, "video-article-*")
}
