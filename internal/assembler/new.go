package assembler

import (
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/logger"
)

type implAssembler struct {
	generator generator.Generator
	logger    logger.Logger
}

func New(gen generator.Generator, log logger.Logger) Assembler {
	return &implAssembler{
		generator: gen,
		logger:    log,
	}
}
