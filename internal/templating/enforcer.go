package templating

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/chunker"
	"github.com/berch-t/youtube-to-courses/internal/models"
	"github.com/berch-t/youtube-to-courses/internal/render"
)

const stage = "templating"

var (
	reExtraBlankLines = regexp.MustCompile(`\n{3,}`)
	reH2              = regexp.MustCompile(`(?m)^## (.+)$`)
	reAnchorStrip     = regexp.MustCompile(`[^\p{L}\p{N}\s-]`)
)

func (e *implEnforcer) Enforce(ctx context.Context, course render.Course, opts Options) (string, []models.Module, []models.ValidationWarning) {
	modules, warnings := Repair(course.Modules)
	course.Modules = modules

	doc := Layout(opts.Style, course)
	doc = reExtraBlankLines.ReplaceAllString(doc, "\n\n")
	if opts.IncludeTOC {
		doc = insertTOC(doc)
	}

	warnings = append(warnings, Check(doc)...)
	for _, w := range warnings {
		e.logger.Warn(ctx, "Template validation: %s", w.Message)
	}
	e.logger.Info(ctx, "Rendered %d modules with the %s layout (%d warnings)", len(modules), opts.Style, len(warnings))

	return doc, modules, warnings
}

// Repair clamps the module count to [MinModules, MaxModules], dropping
// trailing modules, fills missing fields with defaults keyed by position and
// re-indexes 1..N. The input slice is not modified.
func Repair(modules []models.Module) ([]models.Module, []models.ValidationWarning) {
	var warnings []models.ValidationWarning
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, models.ValidationWarning{Stage: stage, Message: fmt.Sprintf(format, args...)})
	}

	if len(modules) > MaxModules {
		warn("%d modules exceed the maximum of %d; trailing modules dropped", len(modules), MaxModules)
		modules = modules[:MaxModules]
	}
	if len(modules) < MinModules {
		warn("only %d modules, minimum is %d", len(modules), MinModules)
	}

	out := make([]models.Module, len(modules))
	for i, m := range modules {
		n := i + 1
		m.Index = n

		if strings.TrimSpace(m.Title) == "" {
			m.Title = fmt.Sprintf("Module %d", n)
			warn("module %d had no title", n)
		}
		if strings.TrimSpace(m.EstimatedDuration) == "" {
			m.EstimatedDuration = "15 minutes"
			warn("module %d had no duration", n)
		}
		if strings.TrimSpace(m.BodyText) == "" {
			m.BodyText = fmt.Sprintf("Content for module %d is being prepared.", n)
			warn("module %d had no content", n)
		}
		if len(m.LearningObjectives) == 0 {
			m.LearningObjectives = []string{fmt.Sprintf("Understand the content of Module %d", n)}
			warn("module %d had no objectives", n)
		}
		switch {
		case m.Difficulty == 0:
			m.Difficulty = 3
			warn("module %d had no difficulty", n)
		case m.Difficulty < 1 || m.Difficulty > 5:
			warn("module %d difficulty %d out of range", n, m.Difficulty)
			m.Difficulty = min(max(m.Difficulty, 1), 5)
		}

		if size := chunker.Size(m.BodyText); size < minModuleLength {
			warn("module %d content is short (%d chars)", n, size)
		} else if size > maxModuleLength {
			warn("module %d content is long (%d chars)", n, size)
		}

		out[i] = m
	}

	return out, warnings
}

// Check runs the final structural check on a rendered document.
func Check(doc string) []models.ValidationWarning {
	var warnings []models.ValidationWarning
	lower := strings.ToLower(doc)
	for _, kw := range requiredKeywords {
		if !strings.Contains(lower, kw) {
			warnings = append(warnings, models.ValidationWarning{Stage: stage, Message: fmt.Sprintf("required keyword %q missing", kw)})
		}
	}
	if size := chunker.Size(doc); size < minDocumentLength {
		warnings = append(warnings, models.ValidationWarning{Stage: stage, Message: fmt.Sprintf("document is short (%d chars, minimum %d)", size, minDocumentLength)})
	}
	return warnings
}

// insertTOC adds a table of contents before the first second-level heading.
func insertTOC(doc string) string {
	headings := reH2.FindAllStringSubmatch(doc, -1)
	if len(headings) == 0 {
		return doc
	}

	var b strings.Builder
	b.WriteString("## Table of contents\n\n")
	for _, h := range headings {
		fmt.Fprintf(&b, "- [%s](#%s)\n", h[1], anchor(h[1]))
	}
	b.WriteString("\n")

	loc := reH2.FindStringIndex(doc)
	return doc[:loc[0]] + b.String() + doc[loc[0]:]
}

func anchor(heading string) string {
	s := strings.ToLower(strings.TrimSpace(heading))
	s = reAnchorStrip.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), "-")
}
