package citation

import (
	"regexp"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/arxiv"
)

type markerKind int

const (
	kindRef markerKind = iota
	kindArXiv
	kindDOI
	kindURL
	kindEtAl
)

var reMarker = regexp.MustCompile(`\[(REF-\d+|arXiv:\d{4}\.\d{4,5}(?:v\d+)?|DOI:[^\]\s]+|URL:[^\]\s]+|[^\[\]]*?et al\.[^\[\]]*?\d{4}[^\[\]]*?)\]`)

var (
	reEtAl = regexp.MustCompile(`^\s*([\p{L}'\-]+)[^\d]*?(\d{4})`)
)

type marker struct {
	kind markerKind
	// key is the memoization key, unique per identifier within a build.
	key string
	id  string
	raw string
}

func parseMarker(inner string) marker {
	m := marker{raw: inner}
	switch {
	case strings.HasPrefix(inner, "REF-"):
		m.kind, m.id = kindRef, inner
	case strings.HasPrefix(inner, "arXiv:"):
		m.kind, m.id = kindArXiv, arxiv.ShortID(strings.TrimPrefix(inner, "arXiv:"))
	case strings.HasPrefix(inner, "DOI:"):
		m.kind, m.id = kindDOI, strings.TrimPrefix(inner, "DOI:")
	case strings.HasPrefix(inner, "URL:"):
		m.kind, m.id = kindURL, strings.TrimPrefix(inner, "URL:")
	default:
		m.kind, m.id = kindEtAl, strings.TrimSpace(inner)
	}

	switch m.kind {
	case kindArXiv:
		m.key = "arxiv:" + m.id
	case kindDOI:
		m.key = "doi:" + strings.ToLower(m.id)
	case kindURL:
		m.key = "url:" + m.id
	default:
		m.key = m.id
	}
	return m
}

type occurrence struct {
	start, end int
	marker     marker
}

// findMarkers returns placeholder occurrences in document order. Bracketed
// text immediately followed by "(" is a Markdown link and is skipped.
func findMarkers(content string) []occurrence {
	var out []occurrence
	for _, loc := range reMarker.FindAllStringSubmatchIndex(content, -1) {
		if loc[1] < len(content) && content[loc[1]] == '(' {
			continue
		}
		out = append(out, occurrence{
			start:  loc[0],
			end:    loc[1],
			marker: parseMarker(content[loc[2]:loc[3]]),
		})
	}
	return out
}
