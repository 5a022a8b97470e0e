package ingest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sample = `# Transcript (generated 2024-05-01 10:00)

## Chunk 1 [00:00:00 → 00:05:00]

Welcome everyone to this lecture on neural network optimization techniques.
Today we start with gradient descent.

## Chunk 2 [00:05:00 → 00:10:00]

Momentum accelerates convergence.

## Chunk 3 [00:10:00 -> 00:20:00]

Adam combines momentum with adaptive learning rates.
`

func TestParse(t *testing.T) {
	doc, err := Parse(sample)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(doc.Segments) != 3 {
		t.Fatalf("len(Segments) = %d, want 3", len(doc.Segments))
	}
	if doc.TotalDuration != 20*time.Minute {
		t.Errorf("TotalDuration = %v, want 20m", doc.TotalDuration)
	}
	if doc.Segments[1].Start != 5*time.Minute || doc.Segments[1].End != 10*time.Minute {
		t.Errorf("segment 2 bounds = %v-%v", doc.Segments[1].Start, doc.Segments[1].End)
	}
	if doc.Segments[1].Text != "Momentum accelerates convergence." {
		t.Errorf("segment 2 text = %q", doc.Segments[1].Text)
	}
	if doc.Title != "Welcome everyone to this lecture on neural network" {
		t.Errorf("Title = %q", doc.Title)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty", ""},
		{"no chunks", "# Transcript\n\nJust prose without headers."},
		{"empty chunks", "## Chunk 1 [00:00:00 → 00:01:00]\n\n\n"},
		{"reversed bounds", "## Chunk 1 [00:05:00 → 00:01:00]\n\ntext"},
		{"bad minutes", "## Chunk 1 [00:75:00 → 00:80:00]\n\ntext"},
		{"overlap", "## Chunk 1 [00:00:00 → 00:10:00]\n\na\n\n## Chunk 2 [00:05:00 → 00:12:00]\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.content); !errors.Is(err, ErrInvalidTranscript) {
				t.Errorf("Parse() error = %v, want ErrInvalidTranscript", err)
			}
		})
	}
}

func TestParseDefaultTitle(t *testing.T) {
	doc, err := Parse("## Chunk 1 [00:00:00 → 00:01:00]\n\nshort\n")
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != defaultTitle {
		t.Errorf("Title = %q, want %q", doc.Title, defaultTitle)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.md")
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err != nil {
		t.Errorf("Load() error = %v", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.md")); err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestFormatTimestamp(t *testing.T) {
	if got := FormatTimestamp(time.Hour + 2*time.Minute + 3*time.Second); got != "01:02:03" {
		t.Errorf("FormatTimestamp() = %q", got)
	}
}
