package citation

import (
	"context"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

// Manager resolves in-text reference placeholders into formatted citations
// and appends a bibliography of the citations actually used.
type Manager interface {
	// Integrate runs one build's citation pass. Lookup failures degrade to
	// placeholder citations and never fail the pass.
	Integrate(ctx context.Context, content string, opts Options) Result
}

// Resolver fetches bibliographic metadata for one identifier.
type Resolver interface {
	Resolve(ctx context.Context, id string) (models.Citation, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, id string) (models.Citation, error)

func (f ResolverFunc) Resolve(ctx context.Context, id string) (models.Citation, error) {
	return f(ctx, id)
}

type Options struct {
	Style models.CitationStyle
	// Catalog seeds the lookup table before any remote resolution.
	Catalog []models.ResearchPaper
}

type Result struct {
	Content string
	Used    []models.Citation
	Stats   Stats
}

type Stats struct {
	TotalCitations int            `json:"total_citations"`
	Style          string         `json:"citation_style"`
	Sources        map[string]int `json:"sources_breakdown"`
	RecentPapers   int            `json:"recent_papers_count"`
	ArXivPapers    int            `json:"arxiv_papers"`
}
