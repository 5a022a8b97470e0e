package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/citation"
	"github.com/berch-t/youtube-to-courses/internal/export"
	"github.com/berch-t/youtube-to-courses/internal/ingest"
	"github.com/berch-t/youtube-to-courses/internal/logger"
	"github.com/berch-t/youtube-to-courses/internal/models"
	"github.com/berch-t/youtube-to-courses/internal/quality"
	"github.com/berch-t/youtube-to-courses/internal/render"
	"github.com/berch-t/youtube-to-courses/internal/research"
	"github.com/berch-t/youtube-to-courses/internal/structure"
	"github.com/berch-t/youtube-to-courses/internal/templating"
)

// Build runs the stages strictly in sequence:
// ingest, research, structure, rewrite, assemble, template or render,
// quality, citations, persist, exports.
func (b *implBuilder) Build(ctx context.Context, transcriptPath, outputPath string, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, &BuildError{Stage: StageOptions, Kind: ErrInvalidOptions, Err: err}
	}

	start := b.now()
	res := &Result{BuildID: b.newID(), OutputPath: outputPath}
	ctx = logger.WithBuildID(ctx, res.BuildID)

	b.logger.Info(ctx, "========================================")
	b.logger.Info(ctx, "Starting course build: %s", transcriptPath)
	b.logger.Info(ctx, "========================================")

	// Step 1: Ingest transcript
	doc, err := ingest.Load(transcriptPath)
	if err != nil {
		b.logger.Error(ctx, "Ingest failed: %v", err)
		return nil, &BuildError{Stage: StageIngest, Kind: ErrIngest, Err: err}
	}
	b.logger.Info(ctx, "Transcript loaded: %q, %d segments, %s", doc.Title, len(doc.Segments), ingest.FormatTimestamp(doc.TotalDuration))

	style := opts.Style()

	// Step 2: Research integration
	var topics []string
	if opts.ResearchIntegration && b.research != nil {
		r := b.research.Enrich(ctx, doc, research.Options{
			MaxReferences: opts.MaxReferences,
			RecentOnly:    opts.RecentPapersOnly,
		})
		doc, topics, res.Papers = r.Document, r.Topics, r.Papers
	}

	// Step 3: Structure analysis
	analysis := b.analyzer.Analyze(ctx, doc, structure.Hints{Topics: topics, Style: style})
	res.StructureFallback = analysis.Fallback
	b.logger.Info(ctx, "Structure: %d modules (fallback: %t)", len(analysis.Modules), analysis.Fallback)

	// Step 4: Rewrite each module
	modules := make([]models.Module, len(analysis.Modules))
	for i, m := range analysis.Modules {
		m.BodyText = b.rewriter.Rewrite(ctx, m, style)
		modules[i] = m
	}

	// Step 5: Assemble modules and title the course
	modules = b.assembler.Assemble(ctx, modules, style)
	res.Title = b.assembler.CourseTitle(ctx, modules, doc.Title, style)

	course := render.Course{
		Title:           res.Title,
		Modules:         modules,
		Papers:          res.Papers,
		Style:           style,
		GeneratedAt:     start,
		CitationMarkers: opts.Citations && b.citations != nil,
	}

	// Step 6: Template or render
	var content string
	if opts.AdvancedTemplating {
		var warnings []models.ValidationWarning
		content, modules, warnings = b.enforcer.Enforce(ctx, course, templating.Options{
			Style:      opts.TemplateStyle,
			IncludeTOC: opts.IncludeTOC,
		})
		res.Warnings = append(res.Warnings, warnings...)
	} else {
		content = render.Markdown(course)
	}
	res.Modules = modules

	// Step 7: Quality assessment
	if opts.QualityEnhancement {
		var report models.QualityReport
		content, report = quality.New(style, b.logger).Enhance(ctx, content)
		res.Quality = &report
	}

	// Step 8: Citations
	if opts.Citations && b.citations != nil {
		cr := b.citations.Integrate(ctx, content, citation.Options{
			Style:   opts.CitationStyle,
			Catalog: res.Papers,
		})
		content = cr.Content
		res.Citations = &cr.Stats
	}

	// Step 9: Persist
	if err := writeFile(outputPath, []byte(content)); err != nil {
		b.logger.Error(ctx, "Persist failed: %v", err)
		return nil, &BuildError{Stage: StagePersist, Kind: ErrPersist, Err: err}
	}

	base := strings.TrimSuffix(outputPath, filepath.Ext(outputPath))

	if res.Quality != nil {
		res.QualityPath = base + ".quality.json"
		if err := writeJSON(res.QualityPath, res.Quality); err != nil {
			b.warn(ctx, res, "quality", fmt.Sprintf("write quality report: %v", err))
			res.QualityPath = ""
		}
	}

	// Step 10: Derived exports
	if b.exporter != nil {
		artifact := export.Document{Title: res.Title, Markdown: content}
		for _, f := range b.formats {
			path, err := b.exporter.Export(ctx, artifact, f, base)
			if err != nil {
				b.warn(ctx, res, "export", err.Error())
				continue
			}
			res.Exports = append(res.Exports, path)
		}
	}

	res.Duration = b.now().Sub(start)
	b.logger.Info(ctx, "========================================")
	b.logger.Info(ctx, "Course build completed!")
	b.logger.Info(ctx, "Output: %s", outputPath)
	b.logger.Info(ctx, "Modules: %d, papers: %d, warnings: %d", len(res.Modules), len(res.Papers), len(res.Warnings))
	b.logger.Info(ctx, "Build time: %s", res.Duration)
	b.logger.Info(ctx, "========================================")

	return res, nil
}

func (b *implBuilder) warn(ctx context.Context, res *Result, stage, msg string) {
	b.logger.Warn(ctx, "%s: %s", stage, msg)
	res.Warnings = append(res.Warnings, models.ValidationWarning{Stage: stage, Message: msg})
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return writeFile(path, data)
}
