package watcher

import "context"

// Watcher defines the interface for file system monitoring
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConvertHandler converts one detected video file.
type ConvertHandler func(ctx context.Context, videoPath string) error
