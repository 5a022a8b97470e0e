package generator

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
)

var (
	reFence      = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")
	reListPrefix = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s+`)
)

// Text requests free text and rejects empty replies.
func Text(ctx context.Context, g Generator, req Request) (string, error) {
	req.Shape = ShapeText
	out, err := g.Generate(ctx, req)
	if err != nil {
		return "", classify(err)
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return "", malformed("empty text")
	}
	return out, nil
}

// JSON requests a JSON object, decodes it into T and runs validate on it.
// Decode or validation failures are reported as ErrMalformedResponse.
func JSON[T any](ctx context.Context, g Generator, req Request, validate func(*T) error) (T, error) {
	var zero T

	req.Shape = ShapeJSON
	out, err := g.Generate(ctx, req)
	if err != nil {
		return zero, classify(err)
	}

	raw := extractJSON(out)
	if raw == "" {
		return zero, malformed("no JSON object in response")
	}

	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return zero, malformed("decode: %v", err)
	}
	if validate != nil {
		if err := validate(&v); err != nil {
			return zero, malformed("schema: %v", err)
		}
	}

	return v, nil
}

// Lines parses a list reply into items, dropping bullets and numbering.
func Lines(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(reListPrefix.ReplaceAllString(line, ""))
		if line == "" || strings.HasSuffix(line, ":") {
			continue
		}
		items = append(items, line)
	}
	return items
}

func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if m := reFence.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	start := strings.IndexByte(s, '{')
	end := strings.LastIndexByte(s, '}')
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
