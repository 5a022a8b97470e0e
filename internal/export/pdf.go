package export

import (
	"strings"

	"github.com/jung-kurt/gofpdf/v2"
)

// writePDF lays the Markdown out with the core Helvetica font. Text is
// converted to cp1252; characters outside it are dropped.
func writePDF(doc Document, path string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, true)
	pdf.SetAuthor("coursebuilder", false)
	pdf.SetMargins(18, 18, 18)
	pdf.SetAutoPageBreak(true, 18)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(latinOnly(cleanInline(s))) }

	inCode := false
	for _, line := range strings.Split(doc.Markdown, "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			inCode = !inCode
			continue
		}
		if inCode {
			pdf.SetFont("Courier", "", 9)
			pdf.MultiCell(0, 4.5, text(line), "", "L", false)
			continue
		}
		if trimmed == "" {
			pdf.Ln(2)
			continue
		}
		if trimmed == "---" || reTableSep.MatchString(trimmed) && strings.Contains(trimmed, "-") {
			continue
		}

		switch {
		case reHeading.MatchString(trimmed):
			m := reHeading.FindStringSubmatch(trimmed)
			size := 18.0 - 2*float64(len(m[1]))
			pdf.Ln(3)
			pdf.SetFont("Helvetica", "B", size)
			pdf.MultiCell(0, size*0.5, text(m[2]), "", "L", false)
			pdf.Ln(1)
		case reBullet.MatchString(trimmed):
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5.5, text("- "+reLink.ReplaceAllString(reBullet.FindStringSubmatch(trimmed)[1], "$1 ($2)")), "", "L", false)
		case strings.HasPrefix(trimmed, "|"):
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, text(strings.Join(tableCells(trimmed), "  |  ")), "", "L", false)
		default:
			pdf.SetFont("Helvetica", "", 11)
			pdf.MultiCell(0, 5.5, text(reLink.ReplaceAllString(strings.TrimLeft(trimmed, "> "), "$1 ($2)")), "", "L", false)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// latinOnly drops runes the cp1252 core fonts cannot render, such as emoji.
func latinOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 0x24F && r != '€' && r != '•' && r != '–' && r != '—' && r != '’' && r != '“' && r != '”' {
			return -1
		}
		return r
	}, s)
}
