package assembler

import (
	"context"
	"fmt"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/chunker"
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

const (
	contextBudget = 1500
	maxListItems  = 6
	maxTitleSize  = 120
)

func (a *implAssembler) Assemble(ctx context.Context, modules []models.Module, style models.Style) []models.Module {
	out := make([]models.Module, len(modules))

	for i, m := range modules {
		m.Index = i + 1
		brief := moduleBrief(m)

		m.LearningObjectives = a.list(ctx, "objectives", m.Title, objectivesInstruction(style), brief, fallbackObjectives(m.Title))
		m.ReflectionQuestions = a.list(ctx, "questions", m.Title, questionsInstruction(style), brief, fallbackQuestions(m.Title))
		m.Resources = a.list(ctx, "resources", m.Title, resourcesInstruction(style), brief, fallbackResources())
		m.SuggestedReferences = suggestedReferences(m)

		out[i] = m
	}

	return out
}

// list runs one list-shaped generator call. Any failure, or a reply with no
// usable line, yields fallback.
func (a *implAssembler) list(ctx context.Context, kind, title, instruction, brief string, fallback []string) []string {
	text, err := generator.Text(ctx, a.generator, generator.Request{
		Instruction: instruction,
		Context:     brief,
	})
	if err != nil {
		a.logger.Warn(ctx, "Generating %s for %q failed, using defaults: %v", kind, title, err)
		return fallback
	}

	items := generator.Lines(text)
	if len(items) == 0 {
		a.logger.Warn(ctx, "Generated %s for %q had no usable line, using defaults", kind, title)
		return fallback
	}
	if len(items) > maxListItems {
		items = items[:maxListItems]
	}
	return items
}

func (a *implAssembler) CourseTitle(ctx context.Context, modules []models.Module, fallback string, style models.Style) string {
	titles := make([]string, len(modules))
	for i, m := range modules {
		titles[i] = "- " + m.Title
	}

	text, err := generator.Text(ctx, a.generator, generator.Request{
		Instruction: titleInstruction(fallback, style),
		Context:     strings.Join(titles, "\n"),
	})
	if err != nil {
		a.logger.Warn(ctx, "Course title generation failed, using %q: %v", fallback, err)
		return fallback
	}

	title := strings.Trim(strings.Split(text, "\n")[0], "\"#* \t")
	if title == "" {
		return fallback
	}
	return chunker.Truncate(title, maxTitleSize)
}

func moduleBrief(m models.Module) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Module: %s\n", m.Title)
	if len(m.KeyConcepts) > 0 {
		fmt.Fprintf(&b, "Key concepts: %s\n", strings.Join(m.KeyConcepts, ", "))
	}
	body := m.BodyText
	if body == "" {
		body = m.SegmentText()
	}
	b.WriteString("\n")
	b.WriteString(chunker.Head(body, contextBudget))
	return b.String()
}

// suggestedReferences merges the references attached to the module's
// segments, keeping first-seen order.
func suggestedReferences(m models.Module) []string {
	seen := make(map[string]bool)
	var refs []string
	for _, id := range m.SuggestedReferences {
		if !seen[id] {
			seen[id] = true
			refs = append(refs, id)
		}
	}
	for _, seg := range m.Segments {
		for _, id := range seg.SuggestedReferences {
			if !seen[id] {
				seen[id] = true
				refs = append(refs, id)
			}
		}
	}
	return refs
}

func fallbackObjectives(title string) []string {
	return []string{
		fmt.Sprintf("Understand the key concepts of %s", title),
		fmt.Sprintf("Apply the principles covered in %s", title),
	}
}

func fallbackQuestions(title string) []string {
	return []string{
		fmt.Sprintf("How could you apply the ideas of %s in your own context?", title),
	}
}

func fallbackResources() []string {
	return []string{
		"Official documentation for the tools and frameworks mentioned",
		"Hands-on tutorials and worked examples",
	}
}
