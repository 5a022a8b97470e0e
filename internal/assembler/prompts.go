package assembler

import (
	"fmt"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

func objectivesInstruction(style models.Style) string {
	verbs := "concrete action verbs"
	if style.Framework == models.FrameworkBloomsTaxonomy {
		verbs = "Bloom's taxonomy action verbs (identify, explain, apply, analyze, evaluate, design)"
	}
	return fmt.Sprintf("Write 3 to 4 measurable learning objectives for the module below, in %s, using %s. One objective per line, each starting with \"- \".", lang(style), verbs)
}

func questionsInstruction(style models.Style) string {
	return fmt.Sprintf("Write 2 to 3 open reflection questions that help %s think critically about the module below, in %s. One question per line, each starting with \"- \".", audienceOf(style), lang(style))
}

func resourcesInstruction(style models.Style) string {
	return fmt.Sprintf("Suggest 2 to 3 kinds of resources (documentation, tutorials, books, tools) to go further on the module below, in %s. One resource per line, each starting with \"- \".", lang(style))
}

func titleInstruction(current string, style models.Style) string {
	return fmt.Sprintf("Propose one concise, professional title (at most 10 words) in %s for a course made of the modules below. The lecture was provisionally titled %q. Reply with the title only.", lang(style), current)
}

func lang(style models.Style) string {
	if style.Language == "" {
		return "French"
	}
	return style.Language
}

func audienceOf(style models.Style) string {
	if style.Audience == "" {
		return "learners"
	}
	return style.Audience
}
