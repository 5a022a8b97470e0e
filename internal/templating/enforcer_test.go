package templating

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/internal/models"
	"github.com/berch-t/youtube-to-courses/internal/render"
)

func completeModules(n int) []models.Module {
	modules := make([]models.Module, n)
	for i := range modules {
		modules[i] = models.Module{
			Title:               fmt.Sprintf("Topic %d", i+1),
			EstimatedDuration:   "10 minutes",
			Difficulty:          2,
			BodyText:            strings.Repeat("Solid explanatory content. ", 25),
			LearningObjectives:  []string{fmt.Sprintf("Master topic %d", i+1)},
			ReflectionQuestions: []string{"Why?"},
			Resources:           []string{"Docs"},
			KeyConcepts:         []string{fmt.Sprintf("concept %d", i+1)},
			Assessments:         []string{"Review what you learned"},
		}
	}
	return modules
}

func TestRepairClampsToMaximum(t *testing.T) {
	in := completeModules(15)
	out, warnings := Repair(in)

	if len(out) != MaxModules {
		t.Fatalf("len(out) = %d, want %d", len(out), MaxModules)
	}
	for i, m := range out {
		if m.Title != fmt.Sprintf("Topic %d", i+1) {
			t.Errorf("module %d title = %q; modules must be dropped from the tail", i, m.Title)
		}
		if m.Index != i+1 {
			t.Errorf("module %d index = %d", i, m.Index)
		}
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0].Message, "exceed") {
		t.Errorf("warnings = %+v, want only the clamp warning", warnings)
	}
	if in[0].Index != 0 {
		t.Error("Repair must not modify its input")
	}
}

func TestRepairFillsDefaults(t *testing.T) {
	out, warnings := Repair([]models.Module{{}, {Title: "Kept", Difficulty: 9}})

	m := out[0]
	if m.Title != "Module 1" || m.EstimatedDuration != "15 minutes" || m.Difficulty != 3 {
		t.Errorf("defaults = %+v", m)
	}
	if m.BodyText != "Content for module 1 is being prepared." {
		t.Errorf("BodyText = %q", m.BodyText)
	}
	if len(m.LearningObjectives) != 1 || m.LearningObjectives[0] != "Understand the content of Module 1" {
		t.Errorf("LearningObjectives = %q", m.LearningObjectives)
	}
	if out[1].Title != "Kept" || out[1].Difficulty != 5 {
		t.Errorf("second module = %+v", out[1])
	}

	var sawMinimum bool
	for _, w := range warnings {
		if strings.Contains(w.Message, "minimum is 3") {
			sawMinimum = true
		}
	}
	if !sawMinimum {
		t.Errorf("warnings = %+v, want a minimum module count warning", warnings)
	}
}

func TestLayouts(t *testing.T) {
	modules, _ := Repair(completeModules(4))
	course := render.Course{Title: "Course", Modules: modules, Style: models.DefaultStyle()}

	styles := []models.TemplateStyle{
		models.TemplateModern,
		models.TemplateAcademic,
		models.TemplateResearch,
		models.TemplateClassic,
		models.TemplateCorporate,
	}
	for _, style := range styles {
		t.Run(string(style), func(t *testing.T) {
			doc := Layout(style, course)
			for i := 1; i <= 4; i++ {
				if !strings.Contains(doc, fmt.Sprintf("Module %d: Topic %d", i, i)) {
					t.Errorf("module %d heading missing", i)
				}
			}
			lower := strings.ToLower(doc)
			for _, kw := range requiredKeywords {
				if !strings.Contains(lower, kw) {
					t.Errorf("keyword %q missing", kw)
				}
			}
			for _, h := range []string{"### Glossary", "### Executive summary", "### FAQ"} {
				if !strings.Contains(doc, h) {
					t.Errorf("appendix heading %q missing", h)
				}
			}
			if !strings.Contains(doc, "Review what you learned") {
				t.Error("self-assessment items missing")
			}
		})
	}

	if Layout(models.TemplateClassic, course) != Layout(models.TemplateAcademic, course) {
		t.Error("classic must render exactly like academic")
	}
}

func TestEnforceWithTOC(t *testing.T) {
	course := render.Course{Title: "Course", Modules: completeModules(3), Style: models.DefaultStyle()}
	doc, _, _ := New(logger.NewNop()).Enforce(context.Background(), course, Options{Style: models.TemplateResearch, IncludeTOC: true})

	toc := strings.Index(doc, "## Table of contents")
	first := strings.Index(doc, "## Summary")
	if toc < 0 || first < 0 || toc > first {
		t.Fatalf("table of contents must precede the first section:\n%s", doc)
	}
	if !strings.Contains(doc, "- [Module 1: Topic 1](#module-1-topic-1)") {
		t.Error("TOC entry for module 1 missing")
	}
	if strings.Contains(doc, "\n\n\n") {
		t.Error("blank lines were not normalized")
	}
}

func TestCheck(t *testing.T) {
	warnings := Check("tiny document")
	if len(warnings) != 4 {
		t.Errorf("Check() = %+v, want 3 keyword warnings and a length warning", warnings)
	}

	long := "Module objective summary " + strings.Repeat("x", minDocumentLength)
	if w := Check(long); len(w) != 0 {
		t.Errorf("Check() = %+v, want none", w)
	}
}

func TestEnforceReturnsRenderedModules(t *testing.T) {
	course := render.Course{Title: "Course", Modules: completeModules(15), Style: models.DefaultStyle()}
	doc, modules, warnings := New(logger.NewNop()).Enforce(context.Background(), course, Options{Style: models.TemplateCorporate})

	if len(modules) != MaxModules {
		t.Fatalf("len(modules) = %d, want %d", len(modules), MaxModules)
	}
	if n := strings.Count(doc, "\n## Module "); n != len(modules) {
		t.Errorf("document has %d module headings, modules = %d", n, len(modules))
	}
	for i, m := range modules {
		if m.Index != i+1 {
			t.Errorf("module %d index = %d", i, m.Index)
		}
	}
	if len(warnings) == 0 {
		t.Error("clamping should produce a warning")
	}
}

func TestResearchDigestReferences(t *testing.T) {
	modules, _ := Repair(completeModules(3))
	course := render.Course{
		Title:   "Course",
		Modules: modules,
		Papers:  []models.ResearchPaper{{Identifier: "2401.00001", Title: "Fast Optimizers", PublicationYear: 2024, SourceURL: "https://arxiv.org/abs/2401.00001"}},
		Style:   models.DefaultStyle(),
	}

	plain := Layout(models.TemplateModern, course)
	if strings.Contains(plain, "[arXiv:") || !strings.Contains(plain, "Fast Optimizers (2024) https://arxiv.org/abs/2401.00001") {
		t.Errorf("without citations the digest must link the source:\n%s", plain)
	}

	course.CitationMarkers = true
	if marked := Layout(models.TemplateModern, course); !strings.Contains(marked, "Fast Optimizers (2024) [arXiv:2401.00001]") {
		t.Errorf("with citations the digest must carry the marker:\n%s", marked)
	}
}
