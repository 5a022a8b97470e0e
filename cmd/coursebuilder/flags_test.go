package main

import (
	"flag"
	"io"
	"testing"

	"github.com/berch-t/youtube-to-courses/internal/config"
	"github.com/berch-t/youtube-to-courses/internal/models"
	"github.com/berch-t/youtube-to-courses/internal/pipeline"
)

func parseOptions(t *testing.T, cfg config.BuildConfig, args ...string) (*optionFlags, error) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	f, err := bindOptions(fs, cfg)
	if err != nil {
		t.Fatalf("bindOptions() error = %v", err)
	}
	return f, fs.Parse(args)
}

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.BuildConfig
		args    []string
		wantErr bool
		check   func(t *testing.T, o pipeline.Options)
	}{
		{
			name: "config defaults",
			cfg:  config.BuildConfig{Citations: true, CitationStyle: "apa"},
			check: func(t *testing.T, o pipeline.Options) {
				if !o.Citations || o.CitationStyle != models.CitationAPA {
					t.Errorf("citations = %v / %q", o.Citations, o.CitationStyle)
				}
			},
		},
		{
			name: "flag disables configured stage",
			cfg:  config.BuildConfig{Citations: true, CitationStyle: "apa"},
			args: []string{"-citations=false"},
			check: func(t *testing.T, o pipeline.Options) {
				if o.Citations || o.CitationStyle != "" {
					t.Errorf("citations = %v / %q", o.Citations, o.CitationStyle)
				}
			},
		},
		{
			name: "sota keeps explicit style",
			args: []string{"-mode", "sota", "-citation-style", "ieee"},
			check: func(t *testing.T, o pipeline.Options) {
				if !o.ResearchIntegration || o.CitationStyle != models.CitationIEEE || o.TemplateStyle != models.TemplateAcademic {
					t.Errorf("options = %+v", o)
				}
			},
		},
		{
			name: "all years",
			args: []string{"-research", "-all-years"},
			check: func(t *testing.T, o pipeline.Options) {
				if o.RecentPapersOnly {
					t.Error("RecentPapersOnly = true")
				}
			},
		},
		{name: "toc without templating", args: []string{"-toc"}, wantErr: true},
		{name: "unknown style", args: []string{"-templating", "-template-style", "baroque"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := parseOptions(t, tt.cfg, tt.args...)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			o, err := f.resolve()
			if (err != nil) != tt.wantErr {
				t.Fatalf("resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, o)
			}
		})
	}
}

func TestOutputFor(t *testing.T) {
	if got := outputFor("out", "in/lecture one.mp4"); got != "out/lecture one.md" {
		t.Errorf("outputFor() = %q", got)
	}
}

func TestBatchOutputs(t *testing.T) {
	inputs := []string{"in/intro.md", "in/lecture.TXT", "in/lecture.md", "in/notes.txt"}
	got := batchOutputs("out", inputs)

	want := map[string]string{
		"in/intro.md":    "out/intro.md",
		"in/lecture.TXT": "out/lecture.TXT.md",
		"in/lecture.md":  "out/lecture.md.md",
		"in/notes.txt":   "out/notes.md",
	}
	for in, w := range want {
		if got[in] != w {
			t.Errorf("batchOutputs()[%q] = %q, want %q", in, got[in], w)
		}
	}

	seen := map[string]bool{}
	for _, p := range got {
		if seen[p] {
			t.Errorf("output %q assigned twice", p)
		}
		seen[p] = true
	}
}

func TestIsTranscript(t *testing.T) {
	for path, want := range map[string]bool{"a.md": true, "b.TXT": true, "c.mp4": false, "d": false} {
		if got := isTranscript(path); got != want {
			t.Errorf("isTranscript(%q) = %v", path, got)
		}
	}
}
