package render

import (
	"fmt"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

const maxResearchSummary = 5

// Markdown renders the default course layout. Output depends only on c.
func Markdown(c Course) string {
	var b strings.Builder

	writeHeader(&b, c)
	writeOverview(&b, c)
	for _, m := range c.Modules {
		b.WriteString("---\n\n")
		writeModule(&b, m, c)
	}
	b.WriteString("---\n\n")
	writeAppendices(&b, c)

	return b.String()
}

func writeHeader(b *strings.Builder, c Course) {
	fmt.Fprintf(b, "# %s\n\n", c.Title)
	fmt.Fprintf(b, "> **Total duration**: %s  \n", FormatTotal(TotalMinutes(c.Modules)))
	fmt.Fprintf(b, "> **Modules**: %d  \n", len(c.Modules))
	fmt.Fprintf(b, "> **Average difficulty**: %.1f/5  \n", AverageDifficulty(c.Modules))
	fmt.Fprintf(b, "> **Level**: %s  \n", c.Style.Difficulty)
	fmt.Fprintf(b, "> **Audience**: %s  \n", c.Style.Audience)
	if !c.GeneratedAt.IsZero() {
		fmt.Fprintf(b, "> **Generated**: %s\n", c.GeneratedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString("\n")
}

func writeOverview(b *strings.Builder, c Course) {
	b.WriteString("## Course overview\n\n")

	b.WriteString("### Learning objectives\n\n")
	writeList(b, GlobalObjectives(c.Modules))

	b.WriteString("### Course outline\n\n")
	for _, m := range c.Modules {
		fmt.Fprintf(b, "%d. **%s** (%s)\n", m.Index, m.Title, m.EstimatedDuration)
	}
	b.WriteString("\n")
}

func writeModule(b *strings.Builder, m models.Module, c Course) {
	fmt.Fprintf(b, "## Module %d: %s\n\n", m.Index, m.Title)
	fmt.Fprintf(b, "**Duration**: %s · **Difficulty**: %s (%d/5)\n\n", m.EstimatedDuration, Stars(m.Difficulty), m.Difficulty)

	if len(m.Prerequisites) > 0 {
		fmt.Fprintf(b, "**Prerequisites**: %s\n\n", strings.Join(m.Prerequisites, ", "))
	}

	b.WriteString("### Learning objectives\n\n")
	writeList(b, m.LearningObjectives)

	if len(m.KeyConcepts) > 0 {
		b.WriteString("### Key concepts\n\n")
		for _, k := range m.KeyConcepts {
			fmt.Fprintf(b, "- **%s**\n", k)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Content\n\n")
	b.WriteString(strings.TrimSpace(m.BodyText))
	b.WriteString("\n\n")

	b.WriteString("### Reflection questions\n\n")
	writeList(b, m.ReflectionQuestions)

	if len(m.Assessments) > 0 {
		b.WriteString("### Self-assessment\n\n")
		writeList(b, m.Assessments)
	}

	b.WriteString("### Resources\n\n")
	writeList(b, m.Resources)

	if reading := SuggestedReading(m, c); len(reading) > 0 {
		b.WriteString("### Suggested reading\n\n")
		writeList(b, reading)
	}
}

func writeAppendices(b *strings.Builder, c Course) {
	b.WriteString(Appendix(c, "## Appendices"))

	b.WriteString("### Next steps\n\n")
	writeList(b, []string{
		"Revisit the learning objectives and check each one off",
		"Work through the suggested resources for the modules you found hardest",
		"Apply the concepts to a small project of your own",
	})

	if len(c.Papers) > 0 {
		b.WriteString("### Recent research\n\n")
		writeResearch(b, c.Papers)
	}
}

// Appendix renders the glossary, executive summary and FAQ under heading.
// Every layout of the course ends with it.
func Appendix(c Course, heading string) string {
	var b strings.Builder
	b.WriteString(heading)
	b.WriteString("\n\n")

	b.WriteString("### Glossary\n\n")
	glossary := Glossary(c.Modules)
	if len(glossary) == 0 {
		b.WriteString("_No key concepts were identified._\n\n")
	}
	for _, e := range glossary {
		fmt.Fprintf(&b, "- **%s**: introduced in Module %d (%s)\n", e.Term, e.ModuleIndex, e.ModuleTitle)
	}
	if len(glossary) > 0 {
		b.WriteString("\n")
	}

	b.WriteString("### Executive summary\n\n")
	b.WriteString(ExecutiveSummary(c))
	b.WriteString("\n\n")

	b.WriteString("### FAQ\n\n")
	fmt.Fprintf(&b, "**How long does the course take?**  \nAbout %s, module by module.\n\n", FormatTotal(TotalMinutes(c.Modules)))
	b.WriteString("**Do I need prior knowledge?**  \nEach module lists its prerequisites; start with Module 1 if in doubt.\n\n")
	b.WriteString("**How should I use the reflection questions?**  \nAnswer them in writing after each module, before moving on.\n\n")

	return b.String()
}

// ExecutiveSummary is a deterministic one-paragraph summary of the course.
func ExecutiveSummary(c Course) string {
	titles := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		titles[i] = m.Title
	}
	return fmt.Sprintf("This course spans %d modules over %s, at an average difficulty of %.1f/5. It covers: %s.",
		len(c.Modules), FormatTotal(TotalMinutes(c.Modules)), AverageDifficulty(c.Modules), strings.Join(titles, "; "))
}

func writeResearch(b *strings.Builder, papers []models.ResearchPaper) {
	n := len(papers)
	if n > maxResearchSummary {
		n = maxResearchSummary
	}
	for _, p := range papers[:n] {
		authors := strings.Join(p.Authors, ", ")
		if len(p.Authors) > 3 {
			authors = strings.Join(p.Authors[:3], ", ") + " et al."
		}
		fmt.Fprintf(b, "- **%s** (%d), %s. Relevance %.2f. %s\n", p.Title, p.PublicationYear, authors, p.RelevanceScore, p.SourceURL)
	}
	b.WriteString("\n")
}

func writeList(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}
