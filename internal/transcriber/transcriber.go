package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/ingest"
)

// Transcribe runs ffmpeg and whisper.cpp over mediaPath and writes the
// transcript to outputPath, plus a plain .txt next to it.
func (t *implTranscriber) Transcribe(ctx context.Context, mediaPath, outputPath string) (Result, error) {
	startTime := t.now()

	t.logger.Info(ctx, "========================================")
	t.logger.Info(ctx, "Starting transcription: %s", mediaPath)
	t.logger.Info(ctx, "========================================")

	if _, err := os.Stat(mediaPath); err != nil {
		return Result{}, fmt.Errorf("open media: %w", err)
	}

	if err := os.MkdirAll(t.tempDir, 0755); err != nil {
		return Result{}, fmt.Errorf("create temp dir: %w", err)
	}
	// isolated per file so concurrent watch jobs never share audio paths
	workDir, err := os.MkdirTemp(t.tempDir, "transcribe-*")
	if err != nil {
		return Result{}, fmt.Errorf("create work dir: %w", err)
	}
	defer t.cleanup(ctx, workDir)

	// Step 1: Probe duration
	duration := t.probeDuration(ctx, mediaPath)
	if duration > 0 {
		t.logger.Info(ctx, "Media duration: %s", ingest.FormatTimestamp(duration))
	}

	// Step 2: Extract audio
	audioPath, err := t.extractAudio(ctx, mediaPath, workDir)
	if err != nil {
		return Result{}, fmt.Errorf("extract audio: %w", err)
	}

	// Step 3: Transcribe audio to SRT
	srtPath, err := t.runWhisper(ctx, audioPath)
	if err != nil {
		return Result{}, fmt.Errorf("transcribe: %w", err)
	}

	// Step 4: Group cues into chunks
	raw, err := os.ReadFile(srtPath)
	if err != nil {
		return Result{}, fmt.Errorf("read subtitles: %w", err)
	}
	cues, err := ParseSRT(string(raw))
	if err != nil {
		return Result{}, fmt.Errorf("parse subtitles: %w", err)
	}
	chunks := GroupCues(cues, t.chunk, duration)

	// Step 5: Write transcript artifacts
	res := Result{
		TranscriptPath: outputPath,
		TextPath:       strings.TrimSuffix(outputPath, filepath.Ext(outputPath)) + ".txt",
		Chunks:         len(chunks),
		MediaDuration:  duration,
	}
	if err := writeFile(res.TranscriptPath, Markdown(chunks, startTime)); err != nil {
		return Result{}, err
	}
	if err := writeFile(res.TextPath, PlainText(chunks)); err != nil {
		t.logger.Warn(ctx, "Failed to write plain text transcript: %v", err)
		res.TextPath = ""
	}

	t.logger.Info(ctx, "========================================")
	t.logger.Info(ctx, "Transcription completed successfully!")
	t.logger.Info(ctx, "Transcript: %s (%d chunks, %d cues)", res.TranscriptPath, len(chunks), len(cues))
	t.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	t.logger.Info(ctx, "========================================")

	return res, nil
}

func (t *implTranscriber) cleanup(ctx context.Context, dir string) {
	if err := os.RemoveAll(dir); err != nil {
		t.logger.Warn(ctx, "Failed to cleanup work dir %s: %v", dir, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up work dir: %s", dir)
	}
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
