package structure

import (
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/logger"
)

// DefaultCharBudget bounds the transcript text sent for analysis.
const DefaultCharBudget = 6000

type implAnalyzer struct {
	generator  generator.Generator
	logger     logger.Logger
	charBudget int
}

// New creates an Analyzer. A non-positive charBudget selects DefaultCharBudget.
func New(gen generator.Generator, log logger.Logger, charBudget int) Analyzer {
	if charBudget <= 0 {
		charBudget = DefaultCharBudget
	}
	return &implAnalyzer{
		generator:  gen,
		logger:     log,
		charBudget: charBudget,
	}
}
