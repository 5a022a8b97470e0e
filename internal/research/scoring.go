package research

import (
	"sort"
	"strings"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

const (
	directMatchWeight = 3.0
	topicWordWeight   = 1.0
	keywordWeight     = 0.5
	recencyBonus      = 1.0
	recentYear        = 2023
	scoreScale        = 10.0
	minRelevance      = 0.3

	maxRefsPerSegment = 3
	minSharedWords    = 2
	minWordLength     = 3

	recentWindow = 730 * 24 * time.Hour
)

// Relevance scores a paper against a topic with the fixed weighted keyword
// overlap, normalized into [0,1].
func Relevance(title, abstract, topic string, year int) float64 {
	text := strings.ToLower(title + " " + abstract)
	topicLower := strings.ToLower(strings.ReplaceAll(topic, "_", " "))

	score := 0.0
	if strings.Contains(text, topicLower) {
		score += directMatchWeight
	}
	for _, w := range strings.Fields(topicLower) {
		if strings.Contains(text, w) {
			score += topicWordWeight
		}
	}
	for _, kw := range techKeywords {
		if strings.Contains(text, kw) {
			score += keywordWeight
		}
	}
	if year >= recentYear {
		score += recencyBonus
	}

	score /= scoreScale
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

// Rank deduplicates papers by identifier, or by normalized title when the
// identifier is empty, sorts them by descending relevance, keeps the top
// maxReferences and then drops those scoring 0.3 or less.
func Rank(papers []models.ResearchPaper, maxReferences int) []models.ResearchPaper {
	seenIDs := make(map[string]bool)
	seenTitles := make(map[string]bool)
	var unique []models.ResearchPaper

	for _, p := range papers {
		title := normalizeTitle(p.Title)
		if p.Identifier != "" {
			if seenIDs[p.Identifier] {
				continue
			}
			seenIDs[p.Identifier] = true
		} else if title == "" || seenTitles[title] {
			continue
		}
		seenTitles[title] = true
		unique = append(unique, p)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].RelevanceScore > unique[j].RelevanceScore
	})

	if maxReferences > 0 && len(unique) > maxReferences {
		unique = unique[:maxReferences]
	}

	out := unique[:0]
	for _, p := range unique {
		if p.RelevanceScore > minRelevance {
			out = append(out, p)
		}
	}
	return out
}

// Attach returns, for one segment, up to three paper identifiers whose
// titles share at least two significant words with the segment text.
func Attach(segmentText string, papers []models.ResearchPaper) []string {
	lower := strings.ToLower(segmentText)
	var refs []string

	for _, p := range papers {
		matches := 0
		for _, w := range strings.Fields(strings.ToLower(p.Title)) {
			if len([]rune(w)) > minWordLength && strings.Contains(lower, w) {
				matches++
			}
		}
		if matches < minSharedWords {
			continue
		}
		refs = append(refs, paperRef(p))
		if len(refs) == maxRefsPerSegment {
			break
		}
	}

	return refs
}

func paperRef(p models.ResearchPaper) string {
	if p.Identifier != "" {
		return p.Identifier
	}
	runes := []rune(p.Title)
	if len(runes) > 50 {
		runes = runes[:50]
	}
	return string(runes)
}

func normalizeTitle(t string) string {
	return strings.Join(strings.Fields(strings.ToLower(t)), " ")
}
