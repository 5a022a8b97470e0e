package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/arxiv"
	"github.com/berch-t/youtube-to-courses/internal/citation"
	"github.com/berch-t/youtube-to-courses/internal/config"
	"github.com/berch-t/youtube-to-courses/internal/export"
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/internal/pipeline"
	"github.com/berch-t/youtube-to-courses/internal/research"
	"github.com/berch-t/youtube-to-courses/internal/transcriber"
	"github.com/berch-t/youtube-to-courses/pkg/executor"
)

type app struct {
	cfg         *config.Config
	log         logger.Logger
	builder     pipeline.Builder
	transcriber transcriber.Transcriber
	executor    executor.Executor
	closers     []func() error
}

// newApp wires the collaborators shared by every command.
func newApp(ctx context.Context, cfg *config.Config, log logger.Logger) *app {
	gen, err := generator.New(cfg.Generator, log)
	if err != nil {
		log.Warn(ctx, "Generator unavailable, every build will use fallbacks: %v", err)
		gen = generator.Unavailable(err.Error())
	}

	exec := executor.New()
	return &app{
		cfg: cfg,
		log: log,
		builder: pipeline.New(pipeline.Dependencies{
			Generator:     gen,
			Research:      newResearch(cfg.Research, log),
			Citations:     newCitations(cfg.Citation, log),
			Exporter:      export.New(log),
			ExportFormats: exportFormats(ctx, cfg.Export.Formats, log),
			Logger:        log,
		}),
		transcriber: transcriber.New(cfg, exec, log),
		executor:    exec,
	}
}

func newResearch(cfg config.ResearchConfig, log logger.Logger) research.Engine {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	var providers []research.Provider
	for _, name := range cfg.Providers {
		switch strings.ToLower(name) {
		case research.SourceArXiv:
			providers = append(providers, research.NewArXiv(arxiv.New(cfg.ArXivURL, timeout)))
		case research.SourcePapersWithCode:
			providers = append(providers, research.NewPapersWithCode(cfg.PapersWithCodeURL, timeout))
		}
	}
	return research.New(providers, cfg.MaxResultsPerTopic, log)
}

func newCitations(cfg config.CitationConfig, log logger.Logger) citation.Manager {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	return citation.New(
		citation.NewArXivResolver(arxiv.New(cfg.ArXivURL, timeout)),
		citation.NewCrossref(cfg.CrossrefURL, cfg.Mailto, timeout),
		log,
	)
}

func exportFormats(ctx context.Context, names []string, log logger.Logger) []export.Format {
	var formats []export.Format
	for _, n := range names {
		f, err := export.ParseFormat(n)
		if err != nil {
			log.Warn(ctx, "Skipping export format: %v", err)
			continue
		}
		formats = append(formats, f)
	}
	return formats
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			fmt.Fprintf(os.Stderr, "close: %v\n", err)
		}
	}
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}
