package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// runWhisper transcribes audioPath and returns the SRT file whisper.cpp wrote.
func (t *implTranscriber) runWhisper(ctx context.Context, audioPath string) (string, error) {
	// whisper.cpp appends .srt to the prefix
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Starting transcription with %d threads: %s", t.whisper.Threads, audioPath)

	// -ml 0 -mc 0: no segment or context limit for long lectures
	// -bo 5: best of five candidates
	args := []string{
		"-m", t.whisper.ModelPath,
		"-f", audioPath,
		"-osrt",
		"-l", t.whisper.Language,
		"-t", strconv.Itoa(t.whisper.Threads),
		"-ml", "0",
		"-mc", "0",
		"-bo", "5",
		"--output-file", outputPrefix,
	}
	if t.whisper.Prompt != "" {
		args = append(args, "--prompt", t.whisper.Prompt)
	}

	if _, err := t.executor.Execute(ctx, t.whisper.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	srtPath := outputPrefix + ".srt"
	t.logger.Info(ctx, "Transcription completed: %s", srtPath)
	return srtPath, nil
}
