package citation

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

// inline formats the in-text form of c. number is its first-seen position.
func inline(style models.CitationStyle, c models.Citation, number int) string {
	switch style {
	case models.CitationAPA, models.CitationDoctoral:
		if len(c.Authors) > 1 {
			return fmt.Sprintf("(%s et al., %s)", surname(c), c.Year)
		}
		return fmt.Sprintf("(%s, %s)", surname(c), c.Year)
	case models.CitationChicago:
		return fmt.Sprintf("(%s %s)", surname(c), c.Year)
	default:
		return fmt.Sprintf("[%d]", number)
	}
}

func surname(c models.Citation) string {
	if len(c.Authors) == 0 || isPlaceholderName(c.Authors[0]) {
		return "Anonymous"
	}
	parts := strings.Fields(c.Authors[0])
	return parts[len(parts)-1]
}

func isPlaceholderName(name string) bool {
	return strings.HasPrefix(name, "[")
}

type numbered struct {
	citation models.Citation
	number   int
}

// bibliography renders the used citations sorted by year, most recent first.
// Undated entries sort last; ties keep first-use order.
func bibliography(style models.CitationStyle, used []numbered, researchNote bool) string {
	sorted := append([]numbered(nil), used...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return yearValue(sorted[i].citation.Year) > yearValue(sorted[j].citation.Year)
	})

	var b strings.Builder
	b.WriteString("## Bibliography\n\n")
	if style == models.CitationBasic {
		b.WriteString("*References used in this course*\n\n")
	} else {
		b.WriteString("*Academic references*\n\n")
	}

	for i, n := range sorted {
		label := n.number
		if !style.Numbered() {
			label = i + 1
		}
		b.WriteString(entry(style, n.citation, label))
		b.WriteString("\n\n")
	}

	if researchNote {
		b.WriteString("### Research methodology\n\n")
		b.WriteString("*References were selected from arXiv, Papers with Code and Crossref, favouring recent publications in the topics covered by this course. Consult the cited sources directly for complete and current details.*\n\n")
	}
	return b.String()
}

func yearValue(y string) int {
	n, err := strconv.Atoi(strings.TrimSpace(y))
	if err != nil {
		return -1
	}
	return n
}

func entry(style models.CitationStyle, c models.Citation, number int) string {
	switch style {
	case models.CitationIEEE:
		return ieeeEntry(c, number)
	case models.CitationAPA:
		return apaEntry(c)
	case models.CitationChicago:
		return chicagoEntry(c)
	case models.CitationDoctoral, models.CitationAcademic:
		return doctoralEntry(c, number)
	default:
		return basicEntry(c, number)
	}
}

func ieeeEntry(c models.Citation, number int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s, \"%s,\"", number, ieeeAuthors(c.Authors), c.Title)
	if c.Journal != "" {
		fmt.Fprintf(&b, " *%s*", c.Journal)
	}
	fmt.Fprintf(&b, ", %s.", c.Year)
	switch {
	case c.DOI != "":
		fmt.Fprintf(&b, " DOI: %s", c.DOI)
	case c.ArXivID != "":
		fmt.Fprintf(&b, " arXiv:%s", c.ArXivID)
	case c.URL != "":
		fmt.Fprintf(&b, " [Online]. Available: %s", c.URL)
	}
	return b.String()
}

func apaEntry(c models.Citation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s). %s.", apaAuthors(c.Authors), c.Year, c.Title)
	if c.Journal != "" {
		fmt.Fprintf(&b, " *%s*.", c.Journal)
	}
	switch {
	case c.DOI != "":
		fmt.Fprintf(&b, " https://doi.org/%s", c.DOI)
	case c.URL != "":
		fmt.Fprintf(&b, " %s", c.URL)
	}
	return b.String()
}

func chicagoEntry(c models.Citation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s. %s. \"%s.\"", chicagoAuthors(c.Authors), c.Year, c.Title)
	if c.Journal != "" {
		fmt.Fprintf(&b, " *%s*.", c.Journal)
	}
	switch {
	case c.DOI != "":
		fmt.Fprintf(&b, " https://doi.org/%s.", c.DOI)
	case c.URL != "":
		fmt.Fprintf(&b, " %s.", c.URL)
	}
	return b.String()
}

func doctoralEntry(c models.Citation, number int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d] %s. \"%s.\" ", number, academicAuthors(c.Authors), c.Title)
	if c.Journal != "" {
		fmt.Fprintf(&b, "*%s* (%s).", c.Journal, c.Year)
	} else {
		fmt.Fprintf(&b, "(%s).", c.Year)
	}
	switch {
	case c.ArXivID != "":
		fmt.Fprintf(&b, " arXiv:%s", c.ArXivID)
	case c.DOI != "":
		fmt.Fprintf(&b, " doi:%s", c.DOI)
	case c.URL != "":
		fmt.Fprintf(&b, " %s", c.URL)
	}
	return b.String()
}

func basicEntry(c models.Citation, number int) string {
	var b strings.Builder
	authors := "[Author]"
	if len(c.Authors) > 0 {
		authors = strings.Join(c.Authors, ", ")
	}
	fmt.Fprintf(&b, "[%d] **%s**\n   *%s* (%s)", number, c.Title, authors, c.Year)
	if c.Journal != "" {
		fmt.Fprintf(&b, " - %s", c.Journal)
	}
	if c.URL != "" {
		fmt.Fprintf(&b, "\n   <%s>", c.URL)
	}
	return b.String()
}

func ieeeAuthors(authors []string) string {
	switch {
	case len(authors) == 0:
		return "[Author]"
	case len(authors) <= 3:
		out := make([]string, len(authors))
		for i, a := range authors {
			out[i] = lastFirst(a)
		}
		return strings.Join(out, " and ")
	default:
		return lastFirst(authors[0]) + " et al."
	}
}

func apaAuthors(authors []string) string {
	switch {
	case len(authors) == 0:
		return "[Author]"
	case len(authors) == 1:
		return lastFirst(authors[0])
	case len(authors) <= 7:
		out := make([]string, len(authors)-1)
		for i, a := range authors[:len(authors)-1] {
			out[i] = lastFirst(a)
		}
		return strings.Join(out, ", ") + ", & " + lastFirst(authors[len(authors)-1])
	default:
		out := make([]string, 6)
		for i, a := range authors[:6] {
			out[i] = lastFirst(a)
		}
		return strings.Join(out, ", ") + ", ... " + lastFirst(authors[len(authors)-1])
	}
}

func chicagoAuthors(authors []string) string {
	switch {
	case len(authors) == 0:
		return "[Author]"
	case len(authors) == 1:
		return lastFull(authors[0])
	case len(authors) <= 3:
		head := append([]string{lastFull(authors[0])}, authors[1:len(authors)-1]...)
		return strings.Join(head, ", ") + ", and " + authors[len(authors)-1]
	default:
		return lastFull(authors[0]) + " et al."
	}
}

func academicAuthors(authors []string) string {
	switch {
	case len(authors) == 0:
		return "[Author]"
	case len(authors) == 1:
		return authors[0]
	case len(authors) <= 3:
		return strings.Join(authors[:len(authors)-1], ", ") + " and " + authors[len(authors)-1]
	default:
		return authors[0] + " et al."
	}
}

// lastFirst turns "Ada King Lovelace" into "Lovelace, A. K.".
func lastFirst(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 || isPlaceholderName(name) {
		return name
	}
	initials := make([]string, len(parts)-1)
	for i, p := range parts[:len(parts)-1] {
		initials[i] = string([]rune(p)[0]) + "."
	}
	return parts[len(parts)-1] + ", " + strings.Join(initials, " ")
}

// lastFull turns "Ada Lovelace" into "Lovelace, Ada".
func lastFull(name string) string {
	parts := strings.Fields(name)
	if len(parts) < 2 || isPlaceholderName(name) {
		return name
	}
	return parts[len(parts)-1] + ", " + strings.Join(parts[:len(parts)-1], " ")
}
