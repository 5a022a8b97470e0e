package generator

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Generate sends one request to Gemini. A rate-limited key is rotated out
// for the next call; the current call still fails.
func (g *implGemini) Generate(ctx context.Context, req Request) (string, error) {
	ctx, cancel := withTimeout(ctx, g.timeout)
	defer cancel()

	keyIndex, key := g.key()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("%w: create client: %w", ErrUnavailable, err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt(req)), g.contentConfig(req))
	if err != nil {
		if isRateLimited(err) {
			next := g.rotateKey(keyIndex)
			g.logger.Warn(ctx, "Gemini key %d rate limited, next call uses key %d", keyIndex+1, next+1)
		}
		return "", fmt.Errorf("%w: generate content: %w", ErrUnavailable, err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", malformed("empty response from Gemini")
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part != nil && part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", malformed("empty response from Gemini")
	}

	return text.String(), nil
}

func (g *implGemini) contentConfig(req Request) *genai.GenerateContentConfig {
	maxTokens := g.maxOutputTokens
	if req.MaxOutputTokens > 0 {
		maxTokens = req.MaxOutputTokens
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(g.temperature),
		MaxOutputTokens: int32(maxTokens),
	}
	if req.Shape == ShapeJSON {
		cfg.ResponseMIMEType = "application/json"
	}
	return cfg
}

func (g *implGemini) key() (int, string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.currentKey, g.apiKeys[g.currentKey]
}

// rotateKey moves past failed unless another call already rotated.
func (g *implGemini) rotateKey(failed int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.currentKey == failed {
		g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	}
	return g.currentKey
}
