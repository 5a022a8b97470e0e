package research

import (
	"context"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

// Provider is one bibliographic search source.
type Provider interface {
	Name() string
	Search(ctx context.Context, topic string, limit int) ([]models.ResearchPaper, error)
}

// Engine enriches a transcript with related research.
type Engine interface {
	// Enrich never fails; provider errors are logged and yield no papers.
	Enrich(ctx context.Context, doc *models.TranscriptDocument, opts Options) Result
}

type Options struct {
	MaxReferences int
	RecentOnly    bool
}

// Result carries the ranked papers and a copy of the transcript whose
// segments list their suggested reference identifiers.
type Result struct {
	Topics   []string
	Papers   []models.ResearchPaper
	Document *models.TranscriptDocument
}
