package pipeline

import (
	"time"

	"github.com/berch-t/youtube-to-courses/internal/assembler"
	"github.com/berch-t/youtube-to-courses/internal/citation"
	"github.com/berch-t/youtube-to-courses/internal/export"
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/internal/research"
	"github.com/berch-t/youtube-to-courses/internal/rewriter"
	"github.com/berch-t/youtube-to-courses/internal/structure"
	"github.com/berch-t/youtube-to-courses/internal/templating"
	"github.com/google/uuid"
)

// Dependencies are the collaborators of a Builder. Research, Citations and
// Exporter may be nil; the matching stages are then skipped.
type Dependencies struct {
	Generator generator.Generator
	Research  research.Engine
	Citations citation.Manager
	Exporter  export.Exporter
	// ExportFormats are written after the Markdown on every build.
	ExportFormats []export.Format
	Logger        logger.Logger
}

type implBuilder struct {
	analyzer  structure.Analyzer
	rewriter  rewriter.Rewriter
	assembler assembler.Assembler
	enforcer  templating.Enforcer
	research  research.Engine
	citations citation.Manager
	exporter  export.Exporter
	formats   []export.Format
	logger    logger.Logger

	now   func() time.Time
	newID func() string
}

// New creates a Builder. The builder holds no per-build state and can run
// concurrent builds.
func New(deps Dependencies) Builder {
	return &implBuilder{
		analyzer:  structure.New(deps.Generator, deps.Logger, structure.DefaultCharBudget),
		rewriter:  rewriter.New(deps.Generator, deps.Logger),
		assembler: assembler.New(deps.Generator, deps.Logger),
		enforcer:  templating.New(deps.Logger),
		research:  deps.Research,
		citations: deps.Citations,
		exporter:  deps.Exporter,
		formats:   deps.ExportFormats,
		logger:    deps.Logger,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}
