package pipeline

import (
	"context"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/citation"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

// Builder turns one transcript into one course document.
type Builder interface {
	// Build runs every stage in order and writes the course to outputPath.
	// Only ingest and persist failures abort; they are returned as *BuildError.
	Build(ctx context.Context, transcriptPath, outputPath string, opts Options) (*Result, error)
}

// Result summarizes a finished build.
type Result struct {
	BuildID    string
	OutputPath string
	Title      string
	Modules    []models.Module
	Papers     []models.ResearchPaper

	// StructureFallback is set when the module list came from the even split.
	StructureFallback bool

	Quality     *models.QualityReport
	QualityPath string
	Citations   *citation.Stats
	Exports     []string
	Warnings    []models.ValidationWarning
	Duration    time.Duration
}
