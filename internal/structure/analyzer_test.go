package structure

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/chunker"
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

func transcript(n int) *models.TranscriptDocument {
	doc := &models.TranscriptDocument{Title: "Lecture"}
	for i := 0; i < n; i++ {
		doc.Segments = append(doc.Segments, models.Segment{
			Start: time.Duration(i) * 5 * time.Minute,
			End:   time.Duration(i+1) * 5 * time.Minute,
			Text:  fmt.Sprintf("segment %d text", i+1),
		})
	}
	doc.TotalDuration = time.Duration(n) * 5 * time.Minute
	return doc
}

func failing() generator.Generator {
	return generator.Func(func(ctx context.Context, req generator.Request) (string, error) {
		return "", fmt.Errorf("%w: down", generator.ErrUnavailable)
	})
}

func replying(text string) generator.Generator {
	return generator.Func(func(ctx context.Context, req generator.Request) (string, error) {
		return text, nil
	})
}

func TestAnalyzeFallback(t *testing.T) {
	tests := []struct {
		segments    int
		wantModules int
	}{
		{1, 3},
		{4, 3},
		{8, 4},
		{10, 5},
		{30, 6},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d segments", tt.segments), func(t *testing.T) {
			doc := transcript(tt.segments)
			res := New(failing(), logger.NewNop(), 0).Analyze(context.Background(), doc, Hints{})

			if !res.Fallback {
				t.Error("Fallback = false, want true")
			}
			if len(res.Modules) != tt.wantModules {
				t.Fatalf("len(Modules) = %d, want %d", len(res.Modules), tt.wantModules)
			}

			total := 0
			per := tt.segments / tt.wantModules
			for i, m := range res.Modules {
				if want := fmt.Sprintf("Module %d", i+1); m.Title != want {
					t.Errorf("module %d title = %q, want %q", i, m.Title, want)
				}
				if m.EstimatedDuration != "8-10 minutes" {
					t.Errorf("module %d duration = %q", i, m.EstimatedDuration)
				}
				if i < len(res.Modules)-1 && len(m.Segments) != per {
					t.Errorf("module %d owns %d segments, want %d", i, len(m.Segments), per)
				}
				total += len(m.Segments)
			}
			if total != tt.segments {
				t.Errorf("modules own %d segments, want %d", total, tt.segments)
			}
		})
	}
}

func TestAnalyzeThemes(t *testing.T) {
	reply := `{"themes":[
		{"title":"Gradient descent","key_concepts":["loss","slope"],"estimated_duration":"10 minutes","difficulty":2,"bloom_objectives":["understand"]},
		{"title":"Adaptive optimizers","key_concepts":["Adam"],"estimated_duration":"about 10 min","difficulty":"7","prerequisites":["calculus"]}
	]}`
	doc := transcript(4)

	res := New(replying(reply), logger.NewNop(), 0).Analyze(context.Background(), doc, Hints{Topics: []string{"optimization"}})
	if res.Fallback {
		t.Fatal("Fallback = true, want false")
	}
	if len(res.Modules) != 2 {
		t.Fatalf("len(Modules) = %d, want 2", len(res.Modules))
	}
	for i, m := range res.Modules {
		if len(m.Segments) != 2 {
			t.Errorf("module %d owns %d segments, want 2", i, len(m.Segments))
		}
	}
	if res.Modules[0].Segments[0].Text != "segment 1 text" || res.Modules[1].Segments[1].Text != "segment 4 text" {
		t.Error("segments are not assigned in transcript order")
	}
	if res.Modules[1].Difficulty != 5 {
		t.Errorf("difficulty = %d, want clamp to 5", res.Modules[1].Difficulty)
	}
	if res.Modules[0].Title != "Gradient descent" || len(res.Modules[1].Prerequisites) != 1 {
		t.Errorf("modules = %+v", res.Modules)
	}
}

func TestAnalyzeEmptyThemesIsFailure(t *testing.T) {
	res := New(replying(`{"themes":[]}`), logger.NewNop(), 0).Analyze(context.Background(), transcript(6), Hints{})
	if !res.Fallback || len(res.Modules) != 3 {
		t.Errorf("Fallback = %v, modules = %d; want fallback with 3 modules", res.Fallback, len(res.Modules))
	}
}

func TestAnalyzeBoundsContext(t *testing.T) {
	var sent string
	gen := generator.Func(func(ctx context.Context, req generator.Request) (string, error) {
		sent = req.Context
		return "", errors.New("offline")
	})
	doc := transcript(200)

	New(gen, logger.NewNop(), 100).Analyze(context.Background(), doc, Hints{})
	if chunker.Size(sent) != 100 {
		t.Errorf("context size = %d, want 100", chunker.Size(sent))
	}
	if sent != chunker.Head(doc.Text(), 100) {
		t.Error("context must keep the head of the transcript")
	}
}

func TestPartition(t *testing.T) {
	segs := transcript(7).Segments

	tests := []struct {
		k    int
		want []int
	}{
		{1, []int{7}},
		{2, []int{3, 4}},
		{3, []int{2, 2, 3}},
		{7, []int{1, 1, 1, 1, 1, 1, 1}},
		{9, []int{0, 0, 0, 0, 0, 0, 0, 0, 7}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("k=%d", tt.k), func(t *testing.T) {
			parts := Partition(segs, tt.k)
			if len(parts) != len(tt.want) {
				t.Fatalf("len(parts) = %d, want %d", len(parts), len(tt.want))
			}
			for i, p := range parts {
				if len(p) != tt.want[i] {
					t.Errorf("part %d has %d segments, want %d", i, len(p), tt.want[i])
				}
			}
		})
	}

	if Partition(segs, 0) != nil {
		t.Error("Partition(k=0) should be nil")
	}
}
