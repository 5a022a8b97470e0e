package research

import (
	"context"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

func (e *implEngine) Enrich(ctx context.Context, doc *models.TranscriptDocument, opts Options) Result {
	topics := ExtractTopics(doc.Text())
	e.logger.Info(ctx, "Research topics identified: %v", topics)

	cutoff := e.now().Add(-recentWindow)

	var all []models.ResearchPaper
	for _, topic := range topics {
		for _, p := range e.providers {
			papers, err := p.Search(ctx, topic, e.resultsPerTopic)
			if err != nil {
				e.logger.Warn(ctx, "%s search failed for topic %q: %v", p.Name(), topic, err)
				continue
			}
			for _, paper := range papers {
				if opts.RecentOnly && tooOld(paper, cutoff) {
					continue
				}
				paper.RelevanceScore = Relevance(paper.Title, paper.Abstract, topic, paper.PublicationYear)
				all = append(all, paper)
			}
		}
	}

	ranked := Rank(all, opts.MaxReferences)
	e.logger.Info(ctx, "Research integration kept %d of %d papers", len(ranked), len(all))

	enriched := &models.TranscriptDocument{
		Title:         doc.Title,
		TotalDuration: doc.TotalDuration,
		Segments:      make([]models.Segment, len(doc.Segments)),
	}
	for i, seg := range doc.Segments {
		seg.SuggestedReferences = Attach(seg.Text, ranked)
		enriched.Segments[i] = seg
	}

	return Result{
		Topics:   topics,
		Papers:   ranked,
		Document: enriched,
	}
}

// tooOld reports whether a dated paper predates cutoff. Undated papers are kept.
func tooOld(p models.ResearchPaper, cutoff time.Time) bool {
	if p.Published == "" {
		return false
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, p.Published); err == nil {
			return t.Before(cutoff)
		}
	}
	return false
}
