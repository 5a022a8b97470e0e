package citation

import (
	"github.com/berch-t/youtube-to-courses/internal/logger"
)

type implManager struct {
	arxiv    Resolver
	crossref Resolver
	logger   logger.Logger
}

// New creates a Manager that resolves arXiv markers with arxivResolver and
// DOI markers with crossref. Either may be nil, in which case those markers
// always become placeholder citations.
func New(arxivResolver, crossref Resolver, log logger.Logger) Manager {
	return &implManager{
		arxiv:    arxivResolver,
		crossref: crossref,
		logger:   log,
	}
}
