package transcriber

import "context"

// Transcriber converts an extracted audio file into a timestamped transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (Transcript, error)
}
