package transcriber

import (
	"context"
	"time"
)

// Transcriber turns a recorded lecture into a transcript artifact that
// ingest.Load accepts.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath, outputPath string) (Result, error)
}

type Result struct {
	TranscriptPath string
	TextPath       string
	Chunks         int
	MediaDuration  time.Duration
}
