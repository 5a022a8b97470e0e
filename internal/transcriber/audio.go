package transcriber

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// extractAudio converts mediaPath to 16kHz mono WAV inside workDir.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath, workDir string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))
	audioPath := filepath.Join(workDir, base+".wav")

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	// -vn: drop video
	// -ar 16000 -ac 1: whisper.cpp expects 16kHz mono
	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-threads", "0",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, "ffmpeg", args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, nil
}

// probeDuration asks ffprobe for the container duration. Zero means unknown.
func (t *implTranscriber) probeDuration(ctx context.Context, mediaPath string) time.Duration {
	out, err := t.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		mediaPath,
	)
	if err != nil {
		t.logger.Warn(ctx, "ffprobe failed, duration unknown: %v", err)
		return 0
	}

	secs, err := strconv.ParseFloat(strings.TrimSpace(out), 64)
	if err != nil || secs < 0 {
		t.logger.Warn(ctx, "ffprobe returned %q, duration unknown", strings.TrimSpace(out))
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
