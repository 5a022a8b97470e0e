package transcriber

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/config"
	"github.com/berch-t/youtube-to-courses/internal/ingest"
	"github.com/berch-t/youtube-to-courses/internal/logger"
)

const sampleSRT = `1
00:00:00,000 --> 00:00:04,000
Welcome to this lecture on gradient descent.

2
00:04:30,500 --> 00:05:10,000
We start with the loss function
and its derivative.

3
00:11:00,000 --> 00:11:30,000
Next, momentum.

`

type fakeExecutor struct {
	calls    []string
	srt      string
	duration string
	failOn   string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return "", errors.New("exit status 1")
	}
	switch name {
	case "ffprobe":
		return f.duration, nil
	case "whisper-cli":
		for i, a := range args {
			if a == "--output-file" {
				return "", os.WriteFile(args[i+1]+".srt", []byte(f.srt), 0644)
			}
		}
		return "", errors.New("no output prefix")
	}
	return "", nil
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

func (f *fakeExecutor) LookPath(name string) (string, error) { return "/usr/bin/" + name, nil }

func newTestTranscriber(t *testing.T, exec *fakeExecutor) *implTranscriber {
	t.Helper()
	cfg := &config.Config{
		Whisper:    config.WhisperConfig{BinaryPath: "whisper-cli", ModelPath: "model.bin", Language: "auto", Threads: 4},
		Transcript: config.TranscriptConfig{ChunkMinutes: 5},
		Paths:      config.PathsConfig{Temp: filepath.Join(t.TempDir(), "temp")},
	}
	tr := New(cfg, exec, logger.NewNop()).(*implTranscriber)
	tr.now = func() time.Time { return time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC) }
	return tr
}

func writeMedia(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lecture.mp4")
	if err := os.WriteFile(path, []byte("fake"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTranscribe(t *testing.T) {
	exec := &fakeExecutor{srt: sampleSRT, duration: "780.25\n"}
	tr := newTestTranscriber(t, exec)
	out := filepath.Join(t.TempDir(), "out", "lecture.md")

	res, err := tr.Transcribe(context.Background(), writeMedia(t), out)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}

	if want := []string{"ffprobe", "ffmpeg", "whisper-cli"}; strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Errorf("calls = %v, want %v", exec.calls, want)
	}
	if res.Chunks != 3 || res.MediaDuration != 780250*time.Millisecond {
		t.Errorf("result = %+v", res)
	}

	doc, err := ingest.Load(out)
	if err != nil {
		t.Fatalf("transcript does not ingest: %v", err)
	}
	if len(doc.Segments) != 3 {
		t.Fatalf("segments = %d, want 3", len(doc.Segments))
	}
	if doc.Segments[2].End != 780*time.Second {
		t.Errorf("last segment ends at %v", doc.Segments[2].End)
	}
	if !strings.Contains(doc.Segments[0].Text, "loss function and its derivative") {
		t.Errorf("segment 1 text = %q", doc.Segments[0].Text)
	}
	if doc.Segments[1].Text != silence {
		t.Errorf("segment 2 text = %q, want silence marker", doc.Segments[1].Text)
	}

	txt, err := os.ReadFile(res.TextPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(txt), silence) || !strings.Contains(string(txt), "Next, momentum.") {
		t.Errorf("plain text = %q", txt)
	}

	entries, _ := os.ReadDir(tr.tempDir)
	if len(entries) != 0 {
		t.Errorf("work dir not cleaned up: %d entries", len(entries))
	}
}

func TestTranscribeFailures(t *testing.T) {
	tests := []struct {
		name string
		exec *fakeExecutor
	}{
		{"ffmpeg fails", &fakeExecutor{srt: sampleSRT, failOn: "ffmpeg"}},
		{"whisper fails", &fakeExecutor{srt: sampleSRT, failOn: "whisper-cli"}},
		{"empty subtitles", &fakeExecutor{srt: "\n\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTranscriber(t, tt.exec)
			out := filepath.Join(t.TempDir(), "lecture.md")
			if _, err := tr.Transcribe(context.Background(), writeMedia(t), out); err == nil {
				t.Fatal("Transcribe() should fail")
			}
			if _, err := os.Stat(out); !os.IsNotExist(err) {
				t.Error("no transcript should be written on failure")
			}
		})
	}
}

func TestTranscribeUnknownDuration(t *testing.T) {
	exec := &fakeExecutor{srt: sampleSRT, failOn: "ffprobe"}
	out := filepath.Join(t.TempDir(), "lecture.md")

	res, err := newTestTranscriber(t, exec).Transcribe(context.Background(), writeMedia(t), out)
	if err != nil {
		t.Fatalf("Transcribe() error = %v", err)
	}
	if res.MediaDuration != 0 || res.Chunks != 3 {
		t.Errorf("result = %+v", res)
	}
}

func TestParseSRT(t *testing.T) {
	cues, err := ParseSRT("\uFEFF" + strings.ReplaceAll(sampleSRT, "\n", "\r\n"))
	if err != nil {
		t.Fatalf("ParseSRT() error = %v", err)
	}
	if len(cues) != 3 {
		t.Fatalf("len(cues) = %d", len(cues))
	}
	if cues[1].Start != 4*time.Minute+30*time.Second+500*time.Millisecond {
		t.Errorf("cue 2 start = %v", cues[1].Start)
	}
	if cues[1].Text != "We start with the loss function and its derivative." {
		t.Errorf("cue 2 text = %q", cues[1].Text)
	}

	if _, err := ParseSRT("1\n00:00:05,000 --> 00:00:01,000\nbackwards\n"); err == nil {
		t.Error("ParseSRT() should reject a cue ending before it starts")
	}
}

func TestGroupCues(t *testing.T) {
	cues := []Cue{
		{Start: 0, End: 30 * time.Second, Text: "a"},
		{Start: 9*time.Minute + 50*time.Second, End: 10*time.Minute + 20*time.Second, Text: "b"},
		{Start: 10 * time.Minute, End: 12 * time.Minute, Text: "c"},
	}

	chunks := GroupCues(cues, 10*time.Minute, 0)
	if len(chunks) != 2 {
		t.Fatalf("len(chunks) = %d, want 2", len(chunks))
	}
	if chunks[0].Text != "a b" || chunks[1].Text != "c" {
		t.Errorf("texts = %q / %q", chunks[0].Text, chunks[1].Text)
	}
	if chunks[0].End != chunks[1].Start {
		t.Error("chunks must be contiguous")
	}
	if chunks[1].End != 12*time.Minute {
		t.Errorf("last chunk end = %v", chunks[1].End)
	}

	if got := GroupCues(nil, time.Minute, 0); got != nil {
		t.Errorf("GroupCues(nil) = %+v", got)
	}
}

func TestIsMedia(t *testing.T) {
	for path, want := range map[string]bool{
		"talk.MP4":  true,
		"talk.mp3":  true,
		"notes.md":  false,
		"README":    false,
		"talk.webm": true,
	} {
		if got := IsMedia(path); got != want {
			t.Errorf("IsMedia(%q) = %v", path, got)
		}
	}
}
