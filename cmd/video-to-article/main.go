package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bobucross-source/video-to-article/internal/composer"
	"github.com/bobucross-source/video-to-article/internal/config"
	"github.com/bobucross-source/video-to-article/internal/gemini"
	"github.com/bobucross-source/video-to-article/internal/logger"
	"github.com/bobucross-source/video-to-article/internal/media"
	"github.com/bobucross-source/video-to-article/internal/processor"
	"github.com/bobucross-source/video-to-article/internal/renderer"
	"github.com/bobucross-source/video-to-article/internal/transcriber"
	"github.com/bobucross-source/video-to-article/internal/watcher"
	"github.com/bobucross-source/video-to-article/pkg/executor"
)

var (
	configFile   string
	interval     int
	instructions string
	outDir       string
)

var rootCmd = &cobra.Command{
	Use:   "video-to-article",
	Short: "Convert lecture videos into illustrated Markdown/HTML articles",
	Long: `video-to-article extracts audio and periodic screenshots from a video,
transcribes the audio with the Gemini API and generates an illustrated
article referencing the screenshots. Outputs standalone HTML (images
embedded), raw Markdown and a docx version.`,
}

var convertCmd = &cobra.Command{
	Use:   "convert <video-file>",
	Short: "Convert a single video file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, deps, err := setup(ctx)
		if err != nil {
			return err
		}
		if interval == 0 {
			interval = cfg.Frames.Interval
		}

		result, err := deps.processor.Process(ctx, args[0], processor.Options{
			Interval:     interval,
			Instructions: instructions,
		})
		if err != nil {
			return fmt.Errorf("conversion failed: %w", err)
		}

		if err := writeArtifacts(ctx, deps.logger, result, outDir); err != nil {
			return err
		}

		deps.logger.Info(ctx, "Done: %d frames, %d transcript segments", result.FrameCount, result.SegmentCount)
		return nil
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a directory and convert every video dropped into it",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, deps, err := setup(ctx)
		if err != nil {
			return err
		}
		if err := cfg.ValidateWatch(); err != nil {
			return err
		}
		if err := os.MkdirAll(cfg.Paths.Input, 0755); err != nil {
			return fmt.Errorf("create input directory: %w", err)
		}

		handler := func(ctx context.Context, videoPath string) error {
			result, err := deps.processor.Process(ctx, videoPath, processor.Options{})
			if err != nil {
				return err
			}
			return writeArtifacts(ctx, deps.logger, result, cfg.Paths.Output)
		}

		w, err := watcher.New(cfg.Paths.Input, handler, deps.logger, cfg.Performance.MaxConcurrent)
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer w.Stop()

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		errChan := make(chan error, 1)
		go func() {
			if err := w.Start(ctx); err != nil && err != context.Canceled {
				errChan <- err
			}
		}()

		deps.logger.Info(ctx, "Watching %s, writing articles to %s. Press Ctrl+C to stop", cfg.Paths.Input, cfg.Paths.Output)

		select {
		case <-sigChan:
			deps.logger.Info(ctx, "Shutdown signal received")
		case err := <-errChan:
			return fmt.Errorf("watcher: %w", err)
		}

		cancel()
		return nil
	},
}

type pipeline struct {
	processor processor.Processor
	logger    logger.Logger
}

// setup loads configuration, checks the startup preconditions (ffmpeg
// present, API key configured) and wires the pipeline. Both checks are
// fatal before any processing begins.
func setup(ctx context.Context) (*config.Config, *pipeline, error) {
	_ = godotenv.Load()

	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	} else {
		cfg = config.Default()
	}

	log := logger.New(cfg.Logging.Level)

	apiKeys := cfg.ResolveAPIKeys()
	if len(apiKeys) == 0 {
		return nil, nil, fmt.Errorf("no Gemini API key configured: set GEMINI_API_KEY or gemini.api_keys in the config file")
	}

	exec := executor.New()
	ext := media.New(cfg.FFmpeg, exec, log)
	if err := ext.Check(ctx); err != nil {
		return nil, nil, fmt.Errorf("ffmpeg/ffprobe must be installed and on PATH: %w", err)
	}

	transcribeClient := gemini.New(apiKeys, cfg.Gemini.TranscribeModel, log)
	articleClient := gemini.New(apiKeys, cfg.Gemini.ArticleModel, log)

	tr := transcriber.New(transcribeClient, log)
	comp := composer.New(articleClient, log)
	proc := processor.New(cfg, ext, tr, comp, log)

	return cfg, &pipeline{processor: proc, logger: log}, nil
}

// writeArtifacts writes the three output files next to each other:
// <title>_article.md, <title>_article.html and <title>_article.docx.
func writeArtifacts(ctx context.Context, log logger.Logger, result processor.Result, dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	base := filepath.Join(dir, result.Title+"_article")

	mdPath := base + ".md"
	if err := os.WriteFile(mdPath, []byte(result.Markdown), 0644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}

	htmlPath := base + ".html"
	if err := os.WriteFile(htmlPath, []byte(result.HTML), 0644); err != nil {
		return fmt.Errorf("write html: %w", err)
	}

	written := []string{mdPath, htmlPath}

	docxPath := base + ".docx"
	if err := renderer.RenderDocx(result.Title, result.Markdown, docxPath); err != nil {
		// The docx view is a convenience; the md/html artifacts stand alone.
		log.Warn(ctx, "Failed to write docx: %v", err)
	} else {
		written = append(written, docxPath)
	}

	log.Info(ctx, "Wrote %s", strings.Join(written, ", "))
	return nil
}

func main() {
	convertCmd.Flags().IntVar(&interval, "interval", 0,
		fmt.Sprintf("screenshot interval in seconds (%d-%d)", config.MinInterval, config.MaxInterval))
	convertCmd.Flags().StringVar(&instructions, "instructions", "", "extra free-text instructions for the article prompt")
	convertCmd.Flags().StringVar(&outDir, "out", ".", "directory to write the article files to")

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to YAML config file")
	rootCmd.AddCommand(convertCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
