package export

import (
	"bytes"
	"fmt"
	"html"
	"os"
)

const htmlPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { max-width: 860px; margin: 2rem auto; padding: 0 1rem; font-family: Georgia, serif; line-height: 1.6; color: #222; }
h1, h2, h3 { font-family: Helvetica, Arial, sans-serif; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 4px 8px; }
blockquote { color: #555; border-left: 3px solid #ddd; margin-left: 0; padding-left: 1rem; }
pre { padding: 0.75rem; overflow-x: auto; }
</style>
</head>
<body>
%s
</body>
</html>
`

func (e *implExporter) writeHTML(doc Document, path string) error {
	var body bytes.Buffer
	if err := e.markdown.Convert([]byte(doc.Markdown), &body); err != nil {
		return fmt.Errorf("convert markdown: %w", err)
	}

	page := fmt.Sprintf(htmlPage, html.EscapeString(doc.Title), body.String())
	return os.WriteFile(path, []byte(page), 0644)
}
