package generator

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/config"
	"github.com/berch-t/youtube-to-courses/internal/logger"
)

type implGemini struct {
	apiKeys         []string
	mu              sync.Mutex
	currentKey      int
	model           string
	timeout         time.Duration
	maxOutputTokens int
	temperature     float32
	logger          logger.Logger
}

type implOpenAI struct {
	apiKey          string
	baseURL         string
	model           string
	timeout         time.Duration
	maxOutputTokens int
	temperature     float32
	httpClient      *http.Client
	logger          logger.Logger
}

type implUnavailable struct {
	reason string
}

// New creates the Generator configured by cfg.Provider.
func New(cfg config.GeneratorConfig, log logger.Logger) (Generator, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("no API key configured for provider %s", cfg.Provider)
	}

	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch strings.ToLower(cfg.Provider) {
	case "", "gemini":
		return &implGemini{
			apiKeys:         cfg.APIKeys,
			model:           cfg.Model,
			timeout:         timeout,
			maxOutputTokens: cfg.MaxOutputTokens,
			temperature:     cfg.Temperature,
			logger:          log,
		}, nil
	case "openai":
		baseURL := strings.TrimRight(cfg.BaseURL, "/")
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		return &implOpenAI{
			apiKey:          cfg.APIKeys[0],
			baseURL:         baseURL,
			model:           cfg.Model,
			timeout:         timeout,
			maxOutputTokens: cfg.MaxOutputTokens,
			temperature:     cfg.Temperature,
			httpClient:      &http.Client{},
			logger:          log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}

// Unavailable returns a Generator whose every call fails with ErrUnavailable.
// It lets a build run on fallbacks alone when no backend is configured.
func Unavailable(reason string) Generator {
	return &implUnavailable{reason: reason}
}

func (u *implUnavailable) Generate(ctx context.Context, req Request) (string, error) {
	return "", fmt.Errorf("%w: %s", ErrUnavailable, u.reason)
}

// prompt flattens a request into a single prompt for backends without roles.
func prompt(req Request) string {
	if req.Context == "" {
		return req.Instruction
	}
	return req.Instruction + "\n\n---\n" + req.Context + "\n---"
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
