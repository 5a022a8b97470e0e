package citation

import (
	"context"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

const recentYear = 2023

func (m *implManager) Integrate(ctx context.Context, content string, opts Options) Result {
	style := opts.Style
	if style == "" {
		style = models.CitationBasic
	}

	s := newSession(m, opts.Catalog)
	occurrences := findMarkers(content)
	for _, o := range occurrences {
		s.resolve(ctx, o.marker)
	}

	numbers := make(map[string]int)
	var used []numbered
	var b strings.Builder
	last := 0
	for _, o := range occurrences {
		c := s.cache[o.marker.key]
		n, ok := numbers[o.marker.key]
		if !ok {
			n = len(numbers) + 1
			numbers[o.marker.key] = n
			used = append(used, numbered{citation: c, number: n})
		}
		b.WriteString(content[last:o.start])
		b.WriteString(inline(style, c, n))
		last = o.end
	}
	b.WriteString(content[last:])

	out := b.String()
	if len(used) > 0 {
		out = strings.TrimRight(out, "\n") + "\n\n" + bibliography(style, used, len(opts.Catalog) > 0)
	}

	citations := make([]models.Citation, len(used))
	for i, u := range used {
		citations[i] = u.citation
	}

	m.logger.Info(ctx, "Citation integration complete: %d citations integrated, %d resolved", len(used), len(s.cache))

	return Result{
		Content: out,
		Used:    citations,
		Stats:   stats(style, citations),
	}
}

func stats(style models.CitationStyle, used []models.Citation) Stats {
	st := Stats{
		TotalCitations: len(used),
		Style:          string(style),
		Sources:        make(map[string]int),
	}
	for _, c := range used {
		st.Sources[string(c.SourceType)]++
		if yearValue(c.Year) >= recentYear {
			st.RecentPapers++
		}
		if c.ArXivID != "" {
			st.ArXivPapers++
		}
	}
	return st
}
