package rewriter

import (
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/logger"
)

const (
	DefaultBudget         = 3000
	DefaultFallbackBudget = 800
)

type implRewriter struct {
	generator      generator.Generator
	logger         logger.Logger
	budget         int
	fallbackBudget int
}

// New creates a Rewriter with the default per-call budgets.
func New(gen generator.Generator, log logger.Logger) Rewriter {
	return NewWithBudgets(gen, log, DefaultBudget, DefaultFallbackBudget)
}

func NewWithBudgets(gen generator.Generator, log logger.Logger, budget, fallbackBudget int) Rewriter {
	return &implRewriter{
		generator:      gen,
		logger:         log,
		budget:         budget,
		fallbackBudget: fallbackBudget,
	}
}
