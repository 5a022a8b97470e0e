package structure

import (
	"context"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

// Analyzer groups transcript segments into thematic modules.
type Analyzer interface {
	// Analyze never fails: when the generator cannot produce themes the
	// deterministic even-split fallback is returned with Fallback set.
	Analyze(ctx context.Context, doc *models.TranscriptDocument, hints Hints) Result
}

// Hints are optional inputs that shape the analysis request.
type Hints struct {
	Topics []string
	Style  models.Style
}

// Result holds module skeletons in course order. Each module owns its
// contiguous slice of transcript segments.
type Result struct {
	Modules  []models.Module
	Fallback bool
}
