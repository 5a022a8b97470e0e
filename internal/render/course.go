// Package render serializes an assembled course to Markdown.
package render

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

const (
	defaultModuleMinutes = 10
	maxGlobalObjectives  = 5
)

var (
	reFirstInt = regexp.MustCompile(`\d+`)
	reArXivID  = regexp.MustCompile(`^\d{4}\.\d{4,5}(v\d+)?$`)
)

// Course is everything the renderers need.
type Course struct {
	Title       string
	Modules     []models.Module
	Papers      []models.ResearchPaper
	Style       models.Style
	GeneratedAt time.Time
	// CitationMarkers writes [arXiv:ID]-style markers for the citation stage
	// to resolve. Without it references point at their source URL.
	CitationMarkers bool
}

// DurationMinutes parses the first integer of a duration string such as
// "8-10 minutes", defaulting to 10.
func DurationMinutes(s string) int {
	m := reFirstInt.FindString(s)
	if m == "" {
		return defaultModuleMinutes
	}
	n, err := strconv.Atoi(m)
	if err != nil || n <= 0 {
		return defaultModuleMinutes
	}
	return n
}

// TotalMinutes sums the parsed durations of all modules.
func TotalMinutes(modules []models.Module) int {
	total := 0
	for _, m := range modules {
		total += DurationMinutes(m.EstimatedDuration)
	}
	return total
}

// FormatTotal renders minutes as "N minutes (HhMM)".
func FormatTotal(minutes int) string {
	return fmt.Sprintf("%d minutes (%dh%02d)", minutes, minutes/60, minutes%60)
}

// AverageDifficulty is the mean module difficulty, 0 for an empty course.
func AverageDifficulty(modules []models.Module) float64 {
	if len(modules) == 0 {
		return 0
	}
	sum := 0
	for _, m := range modules {
		sum += m.Difficulty
	}
	return float64(sum) / float64(len(modules))
}

// GlobalObjectives returns the first five distinct module objectives in course order.
func GlobalObjectives(modules []models.Module) []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range modules {
		for _, o := range m.LearningObjectives {
			key := strings.ToLower(strings.TrimSpace(o))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, o)
			if len(out) == maxGlobalObjectives {
				return out
			}
		}
	}
	return out
}

// GlossaryEntry maps a key concept to the module that introduces it.
type GlossaryEntry struct {
	Term        string
	ModuleIndex int
	ModuleTitle string
}

// Glossary lists every key concept once, in order of first appearance.
func Glossary(modules []models.Module) []GlossaryEntry {
	seen := make(map[string]bool)
	var entries []GlossaryEntry
	for _, m := range modules {
		for _, c := range m.KeyConcepts {
			key := strings.ToLower(strings.TrimSpace(c))
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			entries = append(entries, GlossaryEntry{Term: c, ModuleIndex: m.Index, ModuleTitle: m.Title})
		}
	}
	return entries
}

// ReferenceMarker turns a paper identifier into the citation placeholder
// the citation stage understands.
func ReferenceMarker(id string) string {
	switch {
	case reArXivID.MatchString(id):
		return "[arXiv:" + id + "]"
	case strings.HasPrefix(id, "10."):
		return "[DOI:" + id + "]"
	case strings.HasPrefix(id, "http://"), strings.HasPrefix(id, "https://"):
		return "[URL:" + id + "]"
	default:
		return ""
	}
}

// Stars renders a 1..5 difficulty as filled and empty stars.
func Stars(d int) string {
	if d < 0 {
		d = 0
	}
	if d > 5 {
		d = 5
	}
	return strings.Repeat("★", d) + strings.Repeat("☆", 5-d)
}

func paperIndex(papers []models.ResearchPaper) map[string]models.ResearchPaper {
	idx := make(map[string]models.ResearchPaper, len(papers))
	for _, p := range papers {
		idx[p.Identifier] = p
	}
	return idx
}

// SuggestedReading renders one line per suggested reference of m.
func SuggestedReading(m models.Module, c Course) []string {
	idx := paperIndex(c.Papers)
	var lines []string
	for _, id := range m.SuggestedReferences {
		p, ok := idx[id]
		if !ok {
			continue
		}
		line := p.Title
		if p.PublicationYear > 0 {
			line = fmt.Sprintf("%s (%d)", line, p.PublicationYear)
		}
		if ref := c.Reference(p); ref != "" {
			line += " " + ref
		}
		lines = append(lines, line)
	}
	return lines
}

// Reference is the citation marker of p when markers are enabled, else its
// source URL.
func (c Course) Reference(p models.ResearchPaper) string {
	if !c.CitationMarkers {
		return p.SourceURL
	}
	if marker := ReferenceMarker(p.Identifier); marker != "" {
		return marker
	}
	return ReferenceMarker(p.SourceURL)
}
