package export

import (
	"context"
	"fmt"
	"strings"
)

type Format string

const (
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatPDF  Format = "pdf"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatDOCX, FormatHTML, FormatPDF:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Document is a rendered course ready for conversion.
type Document struct {
	Title    string
	Markdown string
}

// Exporter writes derived artifacts of a Markdown course.
type Exporter interface {
	// Export writes doc in the given format to basePath plus the format
	// extension and returns the written path.
	Export(ctx context.Context, doc Document, format Format, basePath string) (string, error)
}
