package export

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 12
)

var (
	reHeading  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reBold     = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet   = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reNumbered = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	reLink     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	reTableSep = regexp.MustCompile(`^\|?[\s:\-|]+\|?$`)
)

// writeDOCX converts the course Markdown into a styled Word document.
func writeDOCX(doc Document, path string) error {
	d, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	inCode := false
	for _, line := range strings.Split(doc.Markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			d.AddParagraph("").AddText(line).Font("Courier New").Size(10).Color("333333")
			continue
		}
		if trimmed == "" || trimmed == "---" || reTableSep.MatchString(trimmed) && strings.Contains(trimmed, "-") {
			continue
		}

		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			addStyledRun(d.AddParagraph(""), m[2], true, headingSize(len(m[1])))
		case reBullet.MatchString(trimmed):
			addRichText(d.AddParagraph(""), "• "+reBullet.FindStringSubmatch(trimmed)[1])
		case reNumbered.MatchString(trimmed):
			addRichText(d.AddParagraph(""), trimmed)
		case strings.HasPrefix(trimmed, ">"):
			p := d.AddParagraph("")
			p.AddText(cleanInline(strings.TrimSpace(strings.TrimLeft(trimmed, ">")))).Font(fontName).Size(fontSize).Color("555555").Italic(true)
		case strings.HasPrefix(trimmed, "|"):
			addRichText(d.AddParagraph(""), strings.Join(tableCells(trimmed), "  ·  "))
		default:
			addRichText(d.AddParagraph(""), trimmed)
		}
	}

	return d.SaveTo(path)
}

func tableCells(row string) []string {
	var cells []string
	for _, c := range strings.Split(strings.Trim(row, "|"), "|") {
		if c = strings.TrimSpace(c); c != "" {
			cells = append(cells, c)
		}
	}
	return cells
}

func headingSize(level int) uint64 {
	switch level {
	case 1:
		return 18
	case 2:
		return 15
	case 3:
		return 13
	default:
		return fontSize
	}
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(cleanInline(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addRichText(p *docx.Paragraph, text string) {
	text = reLink.ReplaceAllString(text, "$1 ($2)")
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(cleanInline(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(cleanInline(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func cleanInline(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
