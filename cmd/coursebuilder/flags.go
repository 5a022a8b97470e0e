package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/berch-t/youtube-to-courses/internal/config"
	"github.com/berch-t/youtube-to-courses/internal/models"
	"github.com/berch-t/youtube-to-courses/internal/pipeline"
)

// optionFlags binds build option flags whose defaults come from the
// configuration file.
type optionFlags struct {
	opts pipeline.Options

	mode, citationStyle, templateStyle    string
	difficulty, framework, sophistication string
	allYears                              bool
}

func bindOptions(fs *flag.FlagSet, cfg config.BuildConfig) (*optionFlags, error) {
	opts, err := pipeline.OptionsFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("build defaults: %w", err)
	}

	f := &optionFlags{opts: opts}
	o := &f.opts

	fs.StringVar(&f.mode, "mode", string(o.Mode), "preset: fast, quality or sota")
	fs.BoolVar(&o.ResearchIntegration, "research", o.ResearchIntegration, "look up related papers")
	fs.IntVar(&o.MaxReferences, "max-refs", o.MaxReferences, "maximum papers kept by research")
	fs.BoolVar(&f.allYears, "all-years", !o.RecentPapersOnly, "keep papers older than two years")
	fs.BoolVar(&o.Citations, "citations", o.Citations, "resolve citation markers and append a bibliography")
	fs.StringVar(&f.citationStyle, "citation-style", string(o.CitationStyle), "basic, academic, doctoral, ieee, apa or chicago")
	fs.BoolVar(&o.QualityEnhancement, "quality", o.QualityEnhancement, "score the document and write a quality report")
	fs.BoolVar(&o.AdvancedTemplating, "templating", o.AdvancedTemplating, "enforce a course layout")
	fs.StringVar(&f.templateStyle, "template-style", string(o.TemplateStyle), "modern, academic, research, classic or corporate")
	fs.BoolVar(&o.IncludeTOC, "toc", o.IncludeTOC, "add a table of contents (needs -templating)")
	fs.StringVar(&f.difficulty, "difficulty", string(o.DifficultyLevel), "beginner, intermediate, advanced or expert")
	fs.StringVar(&f.framework, "framework", string(o.Framework), "pedagogical framework")
	fs.StringVar(&o.TargetAudience, "audience", o.TargetAudience, "target audience")
	fs.StringVar(&f.sophistication, "sophistication", string(o.Sophistication), "language sophistication")
	fs.StringVar(&o.Language, "language", o.Language, "output language")
	fs.BoolVar(&o.IncludeMathFormulas, "math", o.IncludeMathFormulas, "ask for formulas where relevant")
	fs.BoolVar(&o.IncludeCodeExamples, "code", o.IncludeCodeExamples, "ask for code examples where relevant")

	return f, nil
}

// resolve parses the enum flags and applies the mode preset.
func (f *optionFlags) resolve() (pipeline.Options, error) {
	o := f.opts
	var errs []error

	parse := func(raw string, set func(string) error) {
		if raw == "" {
			return
		}
		if err := set(raw); err != nil {
			errs = append(errs, err)
		}
	}
	parse(f.mode, func(s string) (err error) { o.Mode, err = models.ParseProcessingMode(s); return })
	parse(f.difficulty, func(s string) (err error) { o.DifficultyLevel, err = models.ParseDifficultyLevel(s); return })
	parse(f.framework, func(s string) (err error) { o.Framework, err = models.ParsePedagogicalFramework(s); return })
	parse(f.sophistication, func(s string) (err error) { o.Sophistication, err = models.ParseSophistication(s); return })

	o.CitationStyle, o.TemplateStyle = "", ""
	parse(f.citationStyle, func(s string) (err error) { o.CitationStyle, err = models.ParseCitationStyle(s); return })
	parse(f.templateStyle, func(s string) (err error) { o.TemplateStyle, err = models.ParseTemplateStyle(s); return })

	if len(errs) > 0 {
		return pipeline.Options{}, errors.Join(errs...)
	}

	o.RecentPapersOnly = !f.allYears
	o.ApplyMode()
	// styles inherited from the config must not outlive a stage the flags
	// turned off
	if !o.Citations {
		o.CitationStyle = ""
	}
	if !o.AdvancedTemplating {
		o.TemplateStyle = ""
	}
	return o, o.Validate()
}
