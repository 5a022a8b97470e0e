package pipeline

import (
	"errors"
	"fmt"

	"github.com/berch-t/youtube-to-courses/internal/config"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

const defaultMaxReferences = 10

// Options selects the optional stages and presentation of one build.
type Options struct {
	ResearchIntegration bool
	MaxReferences       int
	RecentPapersOnly    bool

	Citations     bool
	CitationStyle models.CitationStyle

	QualityEnhancement bool

	AdvancedTemplating bool
	TemplateStyle      models.TemplateStyle
	IncludeTOC         bool

	DifficultyLevel     models.DifficultyLevel
	Framework           models.PedagogicalFramework
	TargetAudience      string
	Sophistication      models.Sophistication
	Language            string
	IncludeMathFormulas bool
	IncludeCodeExamples bool

	Mode models.ProcessingMode
}

// DefaultOptions returns a plain build: no optional stage, default style.
func DefaultOptions() Options {
	s := models.DefaultStyle()
	return Options{
		MaxReferences:    defaultMaxReferences,
		RecentPapersOnly: true,
		DifficultyLevel:  s.Difficulty,
		Framework:        s.Framework,
		TargetAudience:   s.Audience,
		Sophistication:   s.Sophistication,
		Language:         s.Language,
	}
}

// ApplyMode switches capability flags according to the Mode preset.
// An empty Mode leaves the options untouched.
func (o *Options) ApplyMode() {
	switch o.Mode {
	case models.ModeFast:
		o.ResearchIntegration = false
		o.Citations, o.CitationStyle = false, ""
		o.QualityEnhancement = false
		o.AdvancedTemplating, o.TemplateStyle = false, ""
		o.IncludeTOC = false
	case models.ModeQuality:
		o.QualityEnhancement = true
		o.AdvancedTemplating = true
		if o.TemplateStyle == "" {
			o.TemplateStyle = models.TemplateModern
		}
	case models.ModeSOTA:
		o.ResearchIntegration = true
		o.Citations = true
		if o.CitationStyle == "" {
			o.CitationStyle = models.CitationDoctoral
		}
		o.QualityEnhancement = true
		o.AdvancedTemplating = true
		if o.TemplateStyle == "" {
			o.TemplateStyle = models.TemplateAcademic
		}
	}
}

// Validate rejects unknown enum values and contradictory combinations.
// It fills the citation and template styles when their stage is enabled
// without one.
func (o *Options) Validate() error {
	var errs []error

	if o.Mode != "" {
		if _, err := models.ParseProcessingMode(string(o.Mode)); err != nil {
			errs = append(errs, err)
		}
	}

	if o.CitationStyle != "" {
		if !o.Citations {
			errs = append(errs, errors.New("citation style set while citations are disabled"))
		}
		if _, err := models.ParseCitationStyle(string(o.CitationStyle)); err != nil {
			errs = append(errs, err)
		}
	} else if o.Citations {
		o.CitationStyle = models.CitationBasic
	}

	if o.TemplateStyle != "" {
		if !o.AdvancedTemplating {
			errs = append(errs, errors.New("template style set while advanced templating is disabled"))
		}
		if _, err := models.ParseTemplateStyle(string(o.TemplateStyle)); err != nil {
			errs = append(errs, err)
		}
	} else if o.AdvancedTemplating {
		o.TemplateStyle = models.TemplateModern
	}

	if o.IncludeTOC && !o.AdvancedTemplating {
		errs = append(errs, errors.New("table of contents requires advanced templating"))
	}

	if o.ResearchIntegration && o.MaxReferences < 1 {
		errs = append(errs, fmt.Errorf("max references must be at least 1, got %d", o.MaxReferences))
	}

	if _, err := models.ParseDifficultyLevel(string(o.DifficultyLevel)); err != nil {
		errs = append(errs, err)
	}
	if _, err := models.ParsePedagogicalFramework(string(o.Framework)); err != nil {
		errs = append(errs, err)
	}
	if _, err := models.ParseSophistication(string(o.Sophistication)); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}
	return nil
}

// Style extracts the presentation settings shared by the generating stages.
func (o Options) Style() models.Style {
	return models.Style{
		Difficulty:     o.DifficultyLevel,
		Framework:      o.Framework,
		Audience:       o.TargetAudience,
		Sophistication: o.Sophistication,
		Language:       o.Language,
		MathFormulas:   o.IncludeMathFormulas,
		CodeExamples:   o.IncludeCodeExamples,
	}
}

// OptionsFromConfig builds validated Options from the build section of the
// configuration file, applying its mode preset.
func OptionsFromConfig(cfg config.BuildConfig) (Options, error) {
	o := DefaultOptions()
	var errs []error

	parse := func(raw string, set func(string) error) {
		if raw == "" {
			return
		}
		if err := set(raw); err != nil {
			errs = append(errs, err)
		}
	}

	parse(cfg.Mode, func(s string) (err error) { o.Mode, err = models.ParseProcessingMode(s); return })
	parse(cfg.CitationStyle, func(s string) (err error) { o.CitationStyle, err = models.ParseCitationStyle(s); return })
	parse(cfg.TemplateStyle, func(s string) (err error) { o.TemplateStyle, err = models.ParseTemplateStyle(s); return })
	parse(cfg.DifficultyLevel, func(s string) (err error) { o.DifficultyLevel, err = models.ParseDifficultyLevel(s); return })
	parse(cfg.Framework, func(s string) (err error) { o.Framework, err = models.ParsePedagogicalFramework(s); return })
	parse(cfg.Sophistication, func(s string) (err error) { o.Sophistication, err = models.ParseSophistication(s); return })
	if len(errs) > 0 {
		return Options{}, fmt.Errorf("%w: %w", ErrInvalidOptions, errors.Join(errs...))
	}

	o.ResearchIntegration = cfg.Research
	if cfg.MaxReferences > 0 {
		o.MaxReferences = cfg.MaxReferences
	}
	o.RecentPapersOnly = !cfg.AllowOlderPapers
	o.Citations = cfg.Citations
	o.QualityEnhancement = cfg.Quality
	o.AdvancedTemplating = cfg.Templating
	o.IncludeTOC = cfg.IncludeTOC
	if cfg.TargetAudience != "" {
		o.TargetAudience = cfg.TargetAudience
	}
	if cfg.Language != "" {
		o.Language = cfg.Language
	}
	o.IncludeMathFormulas = cfg.MathFormulas
	o.IncludeCodeExamples = cfg.CodeExamples

	o.ApplyMode()
	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}
