package service

import "context"

// Transcriber turns an audio file on local disk into text.
type Transcriber interface {
	// Enabled reports whether a transcription backend is configured.
	Enabled() bool

	// Transcribe runs the backend against localPath and returns the resulting text.
	Transcribe(ctx context.Context, localPath string) (string, error)
}
