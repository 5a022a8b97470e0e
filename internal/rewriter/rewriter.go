package rewriter

import (
	"context"
	"fmt"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/chunker"
	"github.com/berch-t/youtube-to-courses/internal/generator"
	"github.com/berch-t/youtube-to-courses/internal/models"
)

func (r *implRewriter) Rewrite(ctx context.Context, module models.Module, style models.Style) string {
	text := strings.TrimSpace(module.SegmentText())
	if text == "" {
		return ""
	}

	parts := chunker.Split(text, r.budget)
	if len(parts) > 1 {
		r.logger.Info(ctx, "Module %q split into %d parts for rewriting", module.Title, len(parts))
	}

	bodies := make([]string, 0, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		label := module.Title
		if len(parts) > 1 {
			label = fmt.Sprintf("%s (Part %d/%d)", module.Title, i+1, len(parts))
		}

		body, err := generator.Text(ctx, r.generator, generator.Request{
			Instruction: rewriteInstruction(label, module.KeyConcepts, style),
			Context:     part,
		})
		if err != nil {
			r.logger.Warn(ctx, "Rewrite of %q failed, falling back to plain translation: %v", label, err)
			body = r.translate(ctx, part, style)
		}
		bodies = append(bodies, body)
	}

	return strings.Join(bodies, "\n\n")
}

// translate is the degraded path: small direct translations, each piece
// kept verbatim when its own call fails.
func (r *implRewriter) translate(ctx context.Context, text string, style models.Style) string {
	pieces := chunker.Split(text, r.fallbackBudget)
	out := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		translated, err := generator.Text(ctx, r.generator, generator.Request{
			Instruction: translateInstruction(style),
			Context:     piece,
		})
		if err != nil {
			r.logger.Warn(ctx, "Translation fallback failed, keeping original text: %v", err)
			translated = piece
		}
		out = append(out, translated)
	}

	return strings.Join(out, " ")
}
