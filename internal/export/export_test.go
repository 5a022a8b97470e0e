package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/berch-t/youtube-to-courses/internal/logger"
)

const sampleMarkdown = "# 🎓 Intro to Go\n\n| Duration | Modules |\n|---|---|\n| 20 minutes | 2 |\n\n## Module 1: Basics\n\n- **Goroutines** are cheap\n1. Read [the tour](https://go.dev/tour)\n\n> Module 1 of 2\n\n```go\nfmt.Println(\"hi\")\n```\n\nPlain paragraph with é accents.\n"

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"docx", FormatDOCX, false},
		{" HTML ", FormatHTML, false},
		{"pdf", FormatPDF, false},
		{"odt", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	e := New(logger.NewNop())
	doc := Document{Title: "Intro to <Go>", Markdown: sampleMarkdown}

	for _, f := range []Format{FormatDOCX, FormatHTML, FormatPDF} {
		t.Run(string(f), func(t *testing.T) {
			path, err := e.Export(context.Background(), doc, f, filepath.Join(dir, "out", "course"))
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			if want := filepath.Join(dir, "out", "course."+string(f)); path != want {
				t.Errorf("path = %q, want %q", path, want)
			}
			info, err := os.Stat(path)
			if err != nil || info.Size() == 0 {
				t.Fatalf("exported file missing or empty: %v", err)
			}
		})
	}

	html, err := os.ReadFile(filepath.Join(dir, "out", "course.html"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"<title>Intro to &lt;Go&gt;</title>", "<table>", "<h2", "Module 1: Basics"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("html missing %q", want)
		}
	}
}

func TestExportUnknownFormat(t *testing.T) {
	if _, err := New(logger.NewNop()).Export(context.Background(), Document{}, "odt", filepath.Join(t.TempDir(), "x")); err == nil {
		t.Error("Export() should reject unknown formats")
	}
}

func TestLatinOnly(t *testing.T) {
	if got := latinOnly("🎓 Cours • été"); got != " Cours • été" {
		t.Errorf("latinOnly() = %q", got)
	}
}
