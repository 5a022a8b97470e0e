package rewriter

import (
	"context"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

// Rewriter turns a module's raw segment text into course prose.
type Rewriter interface {
	// Rewrite never fails; parts the generator cannot handle degrade to a
	// plain translation and then to the original text.
	Rewrite(ctx context.Context, module models.Module, style models.Style) string
}
