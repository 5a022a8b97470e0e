package structure

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/chunker"
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

const (
	minFallbackModules = 3
	maxFallbackModules = 6
	defaultDifficulty  = 3
)

type themesReply struct {
	Themes []theme `json:"themes"`
}

type theme struct {
	Title             string     `json:"title"`
	KeyConcepts       []string   `json:"key_concepts"`
	EstimatedDuration string     `json:"estimated_duration"`
	Difficulty        difficulty `json:"difficulty"`
	BloomObjectives   []string   `json:"bloom_objectives"`
	Prerequisites     []string   `json:"prerequisites"`
	Assessments       []string   `json:"assessments"`
}

// difficulty accepts 3, 3.0 or "3".
type difficulty int

func (d *difficulty) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		*d = 0
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("difficulty %s: %w", b, err)
	}
	*d = difficulty(f)
	return nil
}

func validateThemes(r *themesReply) error {
	if len(r.Themes) == 0 {
		return errors.New("themes is empty")
	}
	for i, t := range r.Themes {
		if strings.TrimSpace(t.Title) == "" {
			return fmt.Errorf("theme %d has no title", i+1)
		}
	}
	return nil
}

func (a *implAnalyzer) Analyze(ctx context.Context, doc *models.TranscriptDocument, hints Hints) Result {
	text := chunker.Head(doc.Text(), a.charBudget)

	req := generator.Request{
		Instruction: analysisInstruction(hints),
		Context:     text,
	}

	reply, err := generator.JSON(ctx, a.generator, req, validateThemes)
	if err != nil {
		a.logger.Warn(ctx, "Structure analysis failed, using even split: %v", err)
		return Result{Modules: fallbackModules(doc.Segments), Fallback: true}
	}

	modules := make([]models.Module, len(reply.Themes))
	for i, t := range reply.Themes {
		modules[i] = t.module()
	}
	assignSegments(modules, doc.Segments)

	a.logger.Info(ctx, "Structure analysis produced %d modules from %d segments", len(modules), len(doc.Segments))
	return Result{Modules: modules}
}

func (t theme) module() models.Module {
	d := int(t.Difficulty)
	switch {
	case d == 0:
		d = defaultDifficulty
	case d < 1:
		d = 1
	case d > 5:
		d = 5
	}

	return models.Module{
		Title:             strings.TrimSpace(t.Title),
		KeyConcepts:       nonEmpty(t.KeyConcepts),
		EstimatedDuration: strings.TrimSpace(t.EstimatedDuration),
		Difficulty:        d,
		BloomObjectives:   nonEmpty(t.BloomObjectives),
		Prerequisites:     nonEmpty(t.Prerequisites),
		Assessments:       nonEmpty(t.Assessments),
	}
}

// fallbackModules builds clamp(n/2, 3, 6) generic modules.
func fallbackModules(segments []models.Segment) []models.Module {
	n := len(segments) / 2
	if n < minFallbackModules {
		n = minFallbackModules
	}
	if n > maxFallbackModules {
		n = maxFallbackModules
	}

	modules := make([]models.Module, n)
	for i := range modules {
		modules[i] = models.Module{
			Title:             fmt.Sprintf("Module %d", i+1),
			KeyConcepts:       []string{"Core concepts", "Practical applications"},
			EstimatedDuration: "8-10 minutes",
			Difficulty:        defaultDifficulty,
			BloomObjectives:   []string{"understand", "apply"},
			Assessments:       []string{"Review questions"},
		}
	}
	assignSegments(modules, segments)
	return modules
}

func assignSegments(modules []models.Module, segments []models.Segment) {
	for i, part := range Partition(segments, len(modules)) {
		modules[i].Segments = part
	}
}

// Partition splits segments into k contiguous groups of len/k segments,
// the last group taking the remainder. Order is preserved.
func Partition(segments []models.Segment, k int) [][]models.Segment {
	if k <= 0 {
		return nil
	}
	per := len(segments) / k
	parts := make([][]models.Segment, k)
	for i := 0; i < k; i++ {
		start := i * per
		end := start + per
		if i == k-1 {
			end = len(segments)
		}
		parts[i] = segments[start:end:end]
	}
	return parts
}

func nonEmpty(items []string) []string {
	var out []string
	for _, s := range items {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
