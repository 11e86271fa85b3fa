package transcriber

import "context"

// Transcriber turns a local video file into transcript text via the remote
// transcription service.
type Transcriber interface {
	// Transcribe uploads the video (compressing it first when it exceeds
	// the service's size ceiling), waits for remote processing, and
	// returns the trimmed transcript text. workDir receives the
	// compressed copy if one is needed.
	Transcribe(ctx context.Context, videoPath, workDir string) (string, error)
}
