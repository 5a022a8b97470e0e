package config

import (
	"fmt"
	"strings"
)

type Config struct {
	Generator   GeneratorConfig   `yaml:"generator"`
	Research    ResearchConfig    `yaml:"research"`
	Citation    CitationConfig    `yaml:"citation"`
	Build       BuildConfig       `yaml:"build"`
	Transcript  TranscriptConfig  `yaml:"transcript"`
	Whisper     WhisperConfig     `yaml:"whisper"`
	Paths       PathsConfig       `yaml:"paths"`
	Export      ExportConfig      `yaml:"export"`
	Redis       RedisConfig       `yaml:"redis"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type GeneratorConfig struct {
	Provider        string  `yaml:"provider"`
	Model           string  `yaml:"model"`
	BaseURL         string  `yaml:"base_url"`
	TimeoutSeconds  int     `yaml:"timeout_seconds"`
	MaxOutputTokens int     `yaml:"max_output_tokens"`
	Temperature     float32 `yaml:"temperature"`

	// APIKeys come from the environment only.
	APIKeys []string `yaml:"-"`
}

type ResearchConfig struct {
	Providers          []string `yaml:"providers"`
	ArXivURL           string   `yaml:"arxiv_url"`
	PapersWithCodeURL  string   `yaml:"paperswithcode_url"`
	TimeoutSeconds     int      `yaml:"timeout_seconds"`
	MaxResultsPerTopic int      `yaml:"max_results_per_topic"`
}

type CitationConfig struct {
	ArXivURL       string `yaml:"arxiv_url"`
	CrossrefURL    string `yaml:"crossref_url"`
	Mailto         string `yaml:"mailto"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// BuildConfig holds the default build options. They are validated when
// turned into pipeline options.
type BuildConfig struct {
	Mode             string `yaml:"mode"`
	Research         bool   `yaml:"research"`
	MaxReferences    int    `yaml:"max_references"`
	AllowOlderPapers bool   `yaml:"allow_older_papers"`
	Citations        bool   `yaml:"citations"`
	CitationStyle    string `yaml:"citation_style"`
	Quality          bool   `yaml:"quality"`
	Templating       bool   `yaml:"templating"`
	TemplateStyle    string `yaml:"template_style"`
	IncludeTOC       bool   `yaml:"include_toc"`
	DifficultyLevel  string `yaml:"difficulty_level"`
	Framework        string `yaml:"framework"`
	TargetAudience   string `yaml:"target_audience"`
	Sophistication   string `yaml:"sophistication"`
	Language         string `yaml:"language"`
	MathFormulas     bool   `yaml:"math_formulas"`
	CodeExamples     bool   `yaml:"code_examples"`
}

type TranscriptConfig struct {
	ChunkMinutes int `yaml:"chunk_minutes"`
}

type WhisperConfig struct {
	ModelPath  string `yaml:"model_path"`
	BinaryPath string `yaml:"binary_path"`
	Language   string `yaml:"language"`
	Prompt     string `yaml:"prompt"`
	Threads    int    `yaml:"threads"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type ExportConfig struct {
	Formats []string `yaml:"formats"`
}

type RedisConfig struct {
	URL       string `yaml:"url"`
	KeyPrefix string `yaml:"key_prefix"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	c.Generator.Provider = strings.ToLower(c.Generator.Provider)
	switch c.Generator.Provider {
	case "":
		c.Generator.Provider = "gemini"
	case "gemini", "openai":
	default:
		return fmt.Errorf("generator.provider %q is not supported", c.Generator.Provider)
	}

	for _, f := range c.Export.Formats {
		switch strings.ToLower(f) {
		case "docx", "html", "pdf":
		default:
			return fmt.Errorf("export.formats: unknown format %q", f)
		}
	}

	for _, p := range c.Research.Providers {
		switch strings.ToLower(p) {
		case "arxiv", "paperswithcode":
		default:
			return fmt.Errorf("research.providers: unknown provider %q", p)
		}
	}

	if c.Generator.Model == "" {
		if c.Generator.Provider == "openai" {
			c.Generator.Model = "gpt-4o-mini"
		} else {
			c.Generator.Model = "gemini-2.5-flash"
		}
	}
	if c.Generator.TimeoutSeconds == 0 {
		c.Generator.TimeoutSeconds = 60
	}
	if c.Generator.MaxOutputTokens == 0 {
		c.Generator.MaxOutputTokens = 4000
	}
	if c.Generator.Temperature == 0 {
		c.Generator.Temperature = 0.3
	}
	if len(c.Research.Providers) == 0 {
		c.Research.Providers = []string{"arxiv", "paperswithcode"}
	}
	if c.Research.ArXivURL == "" {
		c.Research.ArXivURL = "http://export.arxiv.org/api/query"
	}
	if c.Research.PapersWithCodeURL == "" {
		c.Research.PapersWithCodeURL = "https://paperswithcode.com/api/v1/papers/"
	}
	if c.Research.TimeoutSeconds == 0 {
		c.Research.TimeoutSeconds = 10
	}
	if c.Research.MaxResultsPerTopic == 0 {
		c.Research.MaxResultsPerTopic = 5
	}
	if c.Citation.ArXivURL == "" {
		c.Citation.ArXivURL = "http://export.arxiv.org/api/query"
	}
	if c.Citation.CrossrefURL == "" {
		c.Citation.CrossrefURL = "https://api.crossref.org/works/"
	}
	if c.Citation.TimeoutSeconds == 0 {
		c.Citation.TimeoutSeconds = 10
	}
	if c.Build.MaxReferences == 0 {
		c.Build.MaxReferences = 10
	}
	if c.Transcript.ChunkMinutes == 0 {
		c.Transcript.ChunkMinutes = 10
	}
	if c.Whisper.BinaryPath == "" {
		c.Whisper.BinaryPath = "whisper-cli"
	}
	if c.Whisper.ModelPath == "" {
		c.Whisper.ModelPath = "models/ggml-base.bin"
	}
	if c.Whisper.Language == "" {
		c.Whisper.Language = "auto"
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 8
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Redis.KeyPrefix == "" {
		c.Redis.KeyPrefix = "coursebuilder"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}
