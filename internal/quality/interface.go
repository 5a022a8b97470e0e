package quality

import (
	"context"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

// Assessor scores a rendered course document along the fixed quality dimensions.
type Assessor interface {
	// Assess is pure: the same text always yields the same scores.
	Assess(text string) models.QualityReport
	// Enhance assesses text and returns it unchanged with the report.
	// Content rewriting in response to low scores is not performed.
	Enhance(ctx context.Context, text string) (string, models.QualityReport)
}
