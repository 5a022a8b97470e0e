package transcriber

import (
	"time"

	"github.com/berch-t/youtube-to-courses/internal/config"
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/pkg/executor"
)

const defaultChunk = 10 * time.Minute

type implTranscriber struct {
	whisper  config.WhisperConfig
	chunk    time.Duration
	tempDir  string
	executor executor.Executor
	logger   logger.Logger
	now      func() time.Time
}

// New creates a Transcriber backed by ffmpeg, ffprobe and whisper.cpp.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	chunk := time.Duration(cfg.Transcript.ChunkMinutes) * time.Minute
	if chunk <= 0 {
		chunk = defaultChunk
	}
	return &implTranscriber{
		whisper:  cfg.Whisper,
		chunk:    chunk,
		tempDir:  cfg.Paths.Temp,
		executor: exec,
		logger:   log,
		now:      time.Now,
	}
}
