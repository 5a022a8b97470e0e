package templating

import (
	"context"

	"github.com/berch-t/youtube-to-courses/internal/models"
	"github.com/berch-t/youtube-to-courses/internal/render"
)

// Enforcer validates and repairs a course, then renders it through a named layout.
type Enforcer interface {
	// Enforce never fails. It returns the document together with the repaired
	// modules it was rendered from; validation findings come back as warnings
	// and are logged.
	Enforce(ctx context.Context, course render.Course, opts Options) (string, []models.Module, []models.ValidationWarning)
}

type Options struct {
	Style      models.TemplateStyle
	IncludeTOC bool
}
