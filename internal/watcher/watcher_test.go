package watcher

import "testing"

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"lecture.mp4", true},
		{"LECTURE.MP4", true},
		{"clip.mov", true},
		{"clip.avi", true},
		{"clip.mkv", true},
		{"clip.webm", true},
		{"notes.txt", false},
		{"audio.wav", false},
		{"archive.mp4.part", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := isVideoFile(tt.path); got != tt.want {
				t.Errorf("isVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
