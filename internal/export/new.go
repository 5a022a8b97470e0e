package export

import (
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
)

type implExporter struct {
	markdown goldmark.Markdown
	logger   logger.Logger
}

// New creates an Exporter.
func New(log logger.Logger) Exporter {
	return &implExporter{
		markdown: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(highlighting.WithStyle("github")),
			),
		),
		logger: log,
	}
}
