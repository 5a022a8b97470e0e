package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, overlays secrets from the environment and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Default returns a validated config for running without a config file.
func Default() *Config {
	cfg := &Config{
		Paths: PathsConfig{
			Input:  "data/input",
			Output: "data/output",
		},
	}
	cfg.applyEnv()
	_ = cfg.Validate()
	return cfg
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("GENERATOR_PROVIDER")); v != "" {
		c.Generator.Provider = v
	}

	switch strings.ToLower(c.Generator.Provider) {
	case "openai":
		if key := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); key != "" {
			c.Generator.APIKeys = []string{key}
		}
		if v := strings.TrimSpace(os.Getenv("OPENAI_BASE_URL")); v != "" {
			c.Generator.BaseURL = v
		}
		if v := strings.TrimSpace(os.Getenv("OPENAI_MODEL")); v != "" {
			c.Generator.Model = v
		}
	default:
		c.Generator.APIKeys = splitKeys(os.Getenv("GEMINI_API_KEYS"))
		if len(c.Generator.APIKeys) == 0 {
			c.Generator.APIKeys = splitKeys(os.Getenv("GEMINI_API_KEY"))
		}
	}

	if v := strings.TrimSpace(os.Getenv("REDIS_URL")); v != "" {
		c.Redis.URL = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVEL")); v != "" {
		c.Logging.Level = v
	}
}

func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
