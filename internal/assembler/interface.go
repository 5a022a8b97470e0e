package assembler

import (
	"context"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

// Assembler completes rewritten modules with pedagogical metadata.
type Assembler interface {
	// Assemble returns the modules indexed 1..N in the given order, each with
	// objectives, reflection questions, resources and suggested references.
	Assemble(ctx context.Context, modules []models.Module, style models.Style) []models.Module
	// CourseTitle proposes a course title, returning fallback when generation fails.
	CourseTitle(ctx context.Context, modules []models.Module, fallback string, style models.Style) string
}
