package rewriter

import (
	"fmt"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

func rewriteInstruction(title string, concepts []string, style models.Style) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Rewrite the lecture excerpt below as a section of a written course titled %q.\n", title)
	fmt.Fprintf(&b, "Write in %s for %s, at %s level, using a %s register.\n",
		language(style), audience(style), style.Difficulty, style.Sophistication)
	if len(concepts) > 0 {
		fmt.Fprintf(&b, "Make sure these concepts are clearly explained: %s.\n", strings.Join(concepts, ", "))
	}
	b.WriteString(frameworkGuidance(style.Framework))
	if style.MathFormulas {
		b.WriteString("Include the relevant formulas in LaTeX notation.\n")
	}
	if style.CodeExamples {
		b.WriteString("Add short code examples where they help.\n")
	}
	b.WriteString("Remove filler words and repetitions, keep every technical fact, and structure the text with short paragraphs, bold key terms and bullet lists. Reply with the section text only.")
	return b.String()
}

func translateInstruction(style models.Style) string {
	return fmt.Sprintf("Translate the text below into %s. Keep technical terms accurate. Reply with the translation only.", language(style))
}

func frameworkGuidance(f models.PedagogicalFramework) string {
	switch f {
	case models.FrameworkBloomsTaxonomy:
		return "Progress from remembering and understanding towards applying and analyzing.\n"
	case models.FrameworkConstructivist:
		return "Build on what the learner already knows and invite them to connect new ideas to experience.\n"
	case models.FrameworkCompetencyBased:
		return "Frame the content around concrete skills the learner will be able to demonstrate.\n"
	default:
		return "Introduce, explain, illustrate with an example, then summarize.\n"
	}
}

func language(style models.Style) string {
	if style.Language == "" {
		return "French"
	}
	return style.Language
}

func audience(style models.Style) string {
	if style.Audience == "" {
		return "students and professionals"
	}
	return style.Audience
}
