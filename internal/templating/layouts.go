package templating

import (
	"fmt"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/models"
	"github.com/berch-t/youtube-to-courses/internal/render"
)

// Layout renders c with the named layout. Classic is academic.
func Layout(style models.TemplateStyle, c render.Course) string {
	switch style {
	case models.TemplateAcademic, models.TemplateClassic:
		return academic(c)
	case models.TemplateResearch:
		return research(c)
	case models.TemplateCorporate:
		return corporate(c)
	case models.TemplateModern:
		return modern(c)
	default:
		return modern(c)
	}
}

func modern(c render.Course) string {
	var b strings.Builder
	total := render.FormatTotal(render.TotalMinutes(c.Modules))

	fmt.Fprintf(&b, "# 🎓 %s\n\n", c.Title)
	b.WriteString("| Duration | Modules | Difficulty | Level |\n|---|---|---|---|\n")
	fmt.Fprintf(&b, "| %s | %d | %.1f/5 | %s |\n\n", total, len(c.Modules), render.AverageDifficulty(c.Modules), c.Style.Difficulty)

	b.WriteString("## 🎯 What you will learn\n\n")
	b.WriteString("**Course objectives:**\n\n")
	list(&b, render.GlobalObjectives(c.Modules))

	b.WriteString("## 🗺️ Roadmap\n\n")
	for _, m := range c.Modules {
		fmt.Fprintf(&b, "%d. %s · %s · %s\n", m.Index, m.Title, m.EstimatedDuration, render.Stars(m.Difficulty))
	}
	b.WriteString("\n")

	for _, m := range c.Modules {
		fmt.Fprintf(&b, "## 📘 Module %d: %s\n\n", m.Index, m.Title)
		fmt.Fprintf(&b, "> Module %d of %d · ⏱️ %s · %s\n\n", m.Index, len(c.Modules), m.EstimatedDuration, render.Stars(m.Difficulty))
		b.WriteString("### 🎯 Objectives\n\n")
		list(&b, m.LearningObjectives)
		if len(m.KeyConcepts) > 0 {
			fmt.Fprintf(&b, "**Key concepts:** %s\n\n", strings.Join(m.KeyConcepts, " · "))
		}
		b.WriteString("### 📖 Content\n\n")
		b.WriteString(strings.TrimSpace(m.BodyText))
		b.WriteString("\n\n")
		b.WriteString("### 💭 Reflect\n\n")
		list(&b, m.ReflectionQuestions)
		selfAssessment(&b, m, "### ✅ Check yourself\n\n")
		b.WriteString("### 🔗 Go further\n\n")
		list(&b, append(append([]string{}, m.Resources...), render.SuggestedReading(m, c)...))
	}

	b.WriteString(render.Appendix(c, "## 📎 Appendices"))
	researchDigest(&b, c, "## 🔬 Recent research\n\n")

	return b.String()
}

func academic(c render.Course) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	fmt.Fprintf(&b, "**Course length:** %s  \n**Level:** %s  \n**Pedagogical framework:** %s\n\n",
		render.FormatTotal(render.TotalMinutes(c.Modules)), c.Style.Difficulty, c.Style.Framework)

	b.WriteString("## Abstract\n\n")
	b.WriteString(render.ExecutiveSummary(c))
	b.WriteString("\n\n")

	b.WriteString("## 1. Introduction\n\n")
	b.WriteString("### 1.1 Learning objectives\n\n")
	numbered(&b, render.GlobalObjectives(c.Modules))
	b.WriteString("### 1.2 Structure of the course\n\n")
	for _, m := range c.Modules {
		fmt.Fprintf(&b, "- Chapter %d: %s (%s, difficulty %d/5)\n", m.Index+1, m.Title, m.EstimatedDuration, m.Difficulty)
	}
	b.WriteString("\n")

	for _, m := range c.Modules {
		ch := m.Index + 1
		fmt.Fprintf(&b, "## %d. Module %d: %s\n\n", ch, m.Index, m.Title)
		if len(m.Prerequisites) > 0 {
			fmt.Fprintf(&b, "*Prerequisites: %s.*\n\n", strings.Join(m.Prerequisites, "; "))
		}
		fmt.Fprintf(&b, "### %d.1 Objectives\n\n", ch)
		numbered(&b, m.LearningObjectives)
		fmt.Fprintf(&b, "### %d.2 Exposition\n\n", ch)
		b.WriteString(strings.TrimSpace(m.BodyText))
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "### %d.3 Questions for discussion\n\n", ch)
		numbered(&b, m.ReflectionQuestions)
		selfAssessment(&b, m, fmt.Sprintf("### %d.4 Self-assessment\n\n", ch))
		fmt.Fprintf(&b, "### %d.5 Further reading\n\n", ch)
		list(&b, append(append([]string{}, m.Resources...), render.SuggestedReading(m, c)...))
	}

	fmt.Fprintf(&b, "## %d. Conclusion and summary\n\n", len(c.Modules)+2)
	fmt.Fprintf(&b, "The %d modules of this course build on one another; the concepts below form its core vocabulary.\n\n", len(c.Modules))
	researchDigest(&b, c, "### State of the art\n\n")
	b.WriteString(render.Appendix(c, fmt.Sprintf("## %d. Appendices", len(c.Modules)+3)))

	return b.String()
}

func research(c render.Course) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	b.WriteString("## Summary\n\n")
	b.WriteString(render.ExecutiveSummary(c))
	b.WriteString("\n\n")

	b.WriteString("## Research context\n\n")
	if len(c.Papers) == 0 {
		b.WriteString("_No recent publications were linked to this course._\n\n")
	}
	researchDigest(&b, c, "")

	b.WriteString("## Objectives\n\n")
	list(&b, render.GlobalObjectives(c.Modules))

	for _, m := range c.Modules {
		fmt.Fprintf(&b, "## Module %d: %s\n\n", m.Index, m.Title)
		fmt.Fprintf(&b, "*%s · difficulty %d/5 · Bloom levels: %s*\n\n", m.EstimatedDuration, m.Difficulty, joinOr(m.BloomObjectives, "n/a"))
		b.WriteString("### Objectives\n\n")
		list(&b, m.LearningObjectives)
		b.WriteString("### Discussion\n\n")
		b.WriteString(strings.TrimSpace(m.BodyText))
		b.WriteString("\n\n")
		if reading := render.SuggestedReading(m, c); len(reading) > 0 {
			b.WriteString("### Related work\n\n")
			list(&b, reading)
		}
		b.WriteString("### Open questions\n\n")
		list(&b, m.ReflectionQuestions)
		selfAssessment(&b, m, "### Self-assessment\n\n")
		b.WriteString("### Resources\n\n")
		list(&b, m.Resources)
	}

	b.WriteString(render.Appendix(c, "## Appendices"))
	return b.String()
}

func corporate(c render.Course) string {
	var b strings.Builder
	total := render.FormatTotal(render.TotalMinutes(c.Modules))

	fmt.Fprintf(&b, "# %s\n\n", c.Title)
	b.WriteString("## Executive summary\n\n")
	b.WriteString(render.ExecutiveSummary(c))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "**Time investment:** %s · **Audience:** %s\n\n", total, c.Style.Audience)

	b.WriteString("## Business objectives\n\n")
	list(&b, render.GlobalObjectives(c.Modules))

	b.WriteString("## Key takeaways\n\n")
	for _, m := range c.Modules {
		concepts := joinOr(m.KeyConcepts, m.Title)
		fmt.Fprintf(&b, "- **%s**: %s\n", m.Title, concepts)
	}
	b.WriteString("\n")

	for _, m := range c.Modules {
		fmt.Fprintf(&b, "## Module %d: %s\n\n", m.Index, m.Title)
		fmt.Fprintf(&b, "| Duration | Difficulty |\n|---|---|\n| %s | %d/5 |\n\n", m.EstimatedDuration, m.Difficulty)
		b.WriteString("### Objectives\n\n")
		list(&b, m.LearningObjectives)
		b.WriteString("### Content\n\n")
		b.WriteString(strings.TrimSpace(m.BodyText))
		b.WriteString("\n\n")
		b.WriteString("### Action items\n\n")
		list(&b, m.ReflectionQuestions)
		selfAssessment(&b, m, "### Knowledge check\n\n")
		b.WriteString("### Tools and resources\n\n")
		list(&b, m.Resources)
	}

	b.WriteString("## Next steps\n\n")
	list(&b, []string{
		"Share the key takeaways with your team",
		"Pick one action item per module and schedule it",
		"Review progress against the business objectives",
	})
	researchDigest(&b, c, "## Industry research\n\n")
	b.WriteString(render.Appendix(c, "## Appendices"))
	return b.String()
}

func selfAssessment(b *strings.Builder, m models.Module, heading string) {
	if len(m.Assessments) == 0 {
		return
	}
	b.WriteString(heading)
	list(b, m.Assessments)
}

func researchDigest(b *strings.Builder, c render.Course, heading string) {
	if len(c.Papers) == 0 {
		return
	}
	b.WriteString(heading)
	n := min(len(c.Papers), 5)
	for _, p := range c.Papers[:n] {
		line := fmt.Sprintf("%s (%d)", p.Title, p.PublicationYear)
		if ref := c.Reference(p); ref != "" {
			line += " " + ref
		}
		fmt.Fprintf(b, "- %s\n", line)
	}
	b.WriteString("\n")
}

func list(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}

func numbered(b *strings.Builder, items []string) {
	for i, it := range items {
		fmt.Fprintf(b, "%d. %s\n", i+1, it)
	}
	b.WriteString("\n")
}

func joinOr(items []string, def string) string {
	if len(items) == 0 {
		return def
	}
	return strings.Join(items, ", ")
}
