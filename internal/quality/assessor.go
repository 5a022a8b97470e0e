package quality

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

func (a *implAssessor) Assess(text string) models.QualityReport {
	metrics := []models.QualityMetric{
		a.technicalAccuracy(text),
		a.pedagogicalFlow(text),
		a.readability(text),
		completeness(text),
		consistency(text),
		engagement(text),
		accessibility(text),
	}

	report := models.QualityReport{
		DimensionScores: make(map[string]float64, len(metrics)),
		Metrics:         metrics,
		Timestamp:       a.now(),
	}

	sum := 0.0
	for i := range metrics {
		metrics[i].Score = clamp(metrics[i].Score)
		report.DimensionScores[metrics[i].Dimension] = metrics[i].Score
		sum += metrics[i].Score
	}
	report.OverallScore = sum / float64(len(metrics))
	report.Suggestions = enhancementSuggestions(metrics)
	report.CriticalIssues = criticalFixes(metrics)

	return report
}

func (a *implAssessor) Enhance(ctx context.Context, text string) (string, models.QualityReport) {
	report := a.Assess(text)
	a.logger.Info(ctx, "Quality assessment: overall %.2f (%s), %d suggestions, %d critical issues",
		report.OverallScore, Label(report.OverallScore), len(report.Suggestions), len(report.CriticalIssues))
	for _, issue := range report.CriticalIssues {
		a.logger.Warn(ctx, "Quality issue: %s", issue)
	}
	return text, report
}

func enhancementSuggestions(metrics []models.QualityMetric) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range metrics {
		if m.Score >= GoodQuality {
			continue
		}
		for _, s := range m.Suggestions {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	return out
}

func criticalFixes(metrics []models.QualityMetric) []string {
	var out []string
	for _, m := range metrics {
		out = append(out, m.CriticalIssues...)
		if m.Score < MinimumAcceptable {
			out = append(out, fmt.Sprintf("%s below acceptable level (%.2f)", dimensionName(m.Dimension), m.Score))
		}
	}
	return out
}

// Label names the band a score falls in.
func Label(score float64) string {
	switch {
	case score >= ExcellentQuality:
		return "Excellent"
	case score >= GoodQuality:
		return "Good"
	case score >= MinimumAcceptable:
		return "Acceptable"
	default:
		return "Needs improvement"
	}
}

// Summary renders a report as Markdown.
func Summary(r models.QualityReport) string {
	var b strings.Builder
	b.WriteString("## Quality report\n\n")
	fmt.Fprintf(&b, "**Overall score:** %.2f/1.00 (%s)\n\n", r.OverallScore, Label(r.OverallScore))

	b.WriteString("### Scores by dimension\n\n")
	for _, d := range models.QualityDimensions {
		score, ok := r.DimensionScores[d]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s **%s:** %.2f\n", indicator(score), dimensionName(d), score)
	}

	if len(r.Suggestions) > 0 {
		b.WriteString("\n### Suggestions\n\n")
		for _, s := range r.Suggestions[:min(5, len(r.Suggestions))] {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}
	if len(r.CriticalIssues) > 0 {
		b.WriteString("\n### Critical fixes\n\n")
		for _, s := range r.CriticalIssues {
			fmt.Fprintf(&b, "- %s\n", s)
		}
	}

	fmt.Fprintf(&b, "\n*Assessed at %s*\n", r.Timestamp.Format("2006-01-02 15:04:05"))
	return b.String()
}

func indicator(score float64) string {
	switch {
	case score >= 0.8:
		return "🟢"
	case score >= MinimumAcceptable:
		return "🟡"
	default:
		return "🔴"
	}
}

func dimensionName(d string) string {
	words := strings.Split(d, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
