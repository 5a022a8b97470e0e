package citation

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/arxiv"
	"github.com/berch-t/youtube-to-courses/internal/models"
	"github.com/berch-t/youtube-to-courses/internal/render"
)

const (
	placeholderAuthors = "[Authors to be completed]"
	undatedYear        = "n.d."
)

// session is the lookup table of one build. Entries are appended, never replaced.
type session struct {
	m       *implManager
	catalog map[string]models.Citation
	cache   map[string]models.Citation
}

func newSession(m *implManager, papers []models.ResearchPaper) *session {
	s := &session{
		m:       m,
		catalog: make(map[string]models.Citation),
		cache:   make(map[string]models.Citation),
	}
	for _, p := range papers {
		c := fromPaper(p)
		if p.Identifier != "" {
			s.seed(parseMarker(strings.Trim(render.ReferenceMarker(p.Identifier), "[]")).key, c)
		}
		if p.SourceURL != "" {
			s.seed("url:"+p.SourceURL, c)
		}
	}
	return s
}

func (s *session) seed(key string, c models.Citation) {
	if key == "" {
		return
	}
	if _, ok := s.catalog[key]; !ok {
		s.catalog[key] = c
	}
}

// resolve returns the memoized citation for mk, resolving it at most once.
func (s *session) resolve(ctx context.Context, mk marker) models.Citation {
	if c, ok := s.cache[mk.key]; ok {
		return c
	}

	c, ok := s.catalog[mk.key]
	if !ok {
		c = s.lookup(ctx, mk)
	}
	c.Identifier = mk.key
	s.cache[mk.key] = c
	return c
}

func (s *session) lookup(ctx context.Context, mk marker) models.Citation {
	var (
		r   Resolver
		c   models.Citation
		err error
	)

	switch mk.kind {
	case kindArXiv:
		r = s.m.arxiv
	case kindDOI:
		r = s.m.crossref
	case kindURL:
		return websiteCitation(mk.id)
	case kindEtAl:
		return authorYearCitation(mk.id)
	default:
		return placeholder(mk)
	}

	if r == nil {
		return placeholder(mk)
	}
	if c, err = r.Resolve(ctx, mk.id); err != nil {
		s.m.logger.Warn(ctx, "Citation lookup for %s failed, using placeholder: %v", mk.raw, err)
		return placeholder(mk)
	}
	return c
}

func fromPaper(p models.ResearchPaper) models.Citation {
	c := models.Citation{
		Title:      p.Title,
		Authors:    p.Authors,
		Year:       undatedYear,
		SourceType: models.SourceWebsite,
		URL:        p.SourceURL,
	}
	if p.PublicationYear > 0 {
		c.Year = strconv.Itoa(p.PublicationYear)
	}
	switch {
	case strings.HasPrefix(render.ReferenceMarker(p.Identifier), "[arXiv:"):
		c.SourceType = models.SourceArXiv
		c.ArXivID = arxiv.ShortID(p.Identifier)
		c.Journal = "arXiv preprint"
	case strings.HasPrefix(p.Identifier, "10."):
		c.SourceType = models.SourceJournal
		c.DOI = p.Identifier
	}
	return c
}

func placeholder(mk marker) models.Citation {
	c := models.Citation{
		Title:       fmt.Sprintf("[Title to be completed - %s]", mk.raw),
		Authors:     []string{placeholderAuthors},
		Year:        undatedYear,
		SourceType:  models.SourceGeneric,
		Placeholder: true,
	}
	switch mk.kind {
	case kindArXiv:
		c.SourceType = models.SourceArXiv
		c.ArXivID = mk.id
		c.Journal = "arXiv preprint"
		c.URL = "https://arxiv.org/abs/" + mk.id
	case kindDOI:
		c.SourceType = models.SourceJournal
		c.DOI = mk.id
		c.URL = "https://doi.org/" + mk.id
	}
	return c
}

func websiteCitation(raw string) models.Citation {
	title := raw
	if u, err := url.Parse(raw); err == nil && u.Host != "" {
		title = u.Host + u.Path
	}
	return models.Citation{
		Title:      title,
		Year:       undatedYear,
		SourceType: models.SourceWebsite,
		URL:        raw,
	}
}

// authorYearCitation keeps the author and year of a free-text "Author et al., Year" marker.
func authorYearCitation(text string) models.Citation {
	c := models.Citation{
		Title:       fmt.Sprintf("[Title to be completed - %s]", text),
		Authors:     []string{placeholderAuthors},
		Year:        undatedYear,
		SourceType:  models.SourceGeneric,
		Placeholder: true,
	}
	if m := reEtAl.FindStringSubmatch(text); m != nil {
		c.Authors = []string{m[1]}
		c.Year = m[2]
	}
	return c
}

// arxivResolver adapts an arXiv client into a Resolver.
type arxivResolver struct {
	client arxiv.Client
}

// NewArXivResolver resolves arXiv identifiers through client.
func NewArXivResolver(client arxiv.Client) Resolver {
	return &arxivResolver{client: client}
}

func (r *arxivResolver) Resolve(ctx context.Context, id string) (models.Citation, error) {
	e, err := r.client.Lookup(ctx, id)
	if err != nil {
		return models.Citation{}, fmt.Errorf("%w: arxiv %s: %v", ErrLookup, id, err)
	}

	c := models.Citation{
		Title:      e.Title,
		Authors:    e.Authors,
		Year:       undatedYear,
		SourceType: models.SourceArXiv,
		Journal:    "arXiv preprint",
		DOI:        e.DOI,
		ArXivID:    id,
		URL:        "https://arxiv.org/abs/" + id,
	}
	if e.JournalRef != "" {
		c.Journal = e.JournalRef
	}
	if !e.Published.IsZero() {
		c.Year = strconv.Itoa(e.Published.Year())
	}
	return c, nil
}
