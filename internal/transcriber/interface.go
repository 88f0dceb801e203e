package transcriber

import "context"

// Transcriber converts a media file into a plain-text transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) (string, error)
}
