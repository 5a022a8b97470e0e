package structure

import (
	"fmt"
	"strings"
)

func analysisInstruction(h Hints) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are an instructional designer. Analyze the lecture transcript below and group it into 5 to 8 thematic modules for %s at %s level.\n", orDefault(h.Style.Audience, "a general audience"), orDefault(string(h.Style.Difficulty), "intermediate"))
	if len(h.Topics) > 0 {
		fmt.Fprintf(&b, "Detected research topics: %s.\n", strings.Join(h.Topics, ", "))
	}
	b.WriteString("Keep the modules in the order the material is taught.\n")
	b.WriteString(`Reply with JSON only, shaped as:
{"themes": [{"title": "...", "key_concepts": ["..."], "estimated_duration": "10 minutes", "difficulty": 1-5, "bloom_objectives": ["remember|understand|apply|analyze|evaluate|create"], "prerequisites": ["..."], "assessments": ["..."]}]}`)
	return b.String()
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
