package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

func (e *implExporter) Export(ctx context.Context, doc Document, format Format, basePath string) (string, error) {
	path := basePath + "." + string(format)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	var err error
	switch format {
	case FormatDOCX:
		err = writeDOCX(doc, path)
	case FormatHTML:
		err = e.writeHTML(doc, path)
	case FormatPDF:
		err = writePDF(doc, path)
	default:
		return "", fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("export %s: %w", format, err)
	}

	e.logger.Info(ctx, "Exported %s: %s", format, path)
	return path, nil
}
