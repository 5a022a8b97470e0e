package transcriber

import (
	"fmt"
	"strings"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/ingest"
)

const silence = "[no speech detected]"

// Chunk is one fixed time window of the lecture.
type Chunk struct {
	Index int
	Start time.Duration
	End   time.Duration
	Text  string
}

// GroupCues buckets cues into consecutive windows by start time. The
// windows cover [0, total) without gaps; total is widened to the last cue
// end when the probed duration is shorter or unknown.
func GroupCues(cues []Cue, window, total time.Duration) []Chunk {
	if window <= 0 {
		window = defaultChunk
	}
	for _, c := range cues {
		total = max(total, c.End)
	}
	if total <= 0 {
		return nil
	}

	n := int((total + window - 1) / window)
	texts := make([][]string, n)
	for _, c := range cues {
		i := min(int(c.Start/window), n-1)
		texts[i] = append(texts[i], c.Text)
	}

	chunks := make([]Chunk, n)
	for i := range chunks {
		text := strings.Join(texts[i], " ")
		if text == "" {
			text = silence
		}
		chunks[i] = Chunk{
			Index: i + 1,
			Start: time.Duration(i) * window,
			End:   min(time.Duration(i+1)*window, total),
			Text:  text,
		}
	}
	return chunks
}

// Markdown renders chunks in the transcript artifact format.
func Markdown(chunks []Chunk, generatedAt time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transcript (generated %s)\n\n", generatedAt.Format("2006-01-02 15:04:05"))
	for _, c := range chunks {
		fmt.Fprintf(&b, "## Chunk %d [%s → %s]\n\n%s\n\n", c.Index,
			ingest.FormatTimestamp(c.Start), ingest.FormatTimestamp(c.End), c.Text)
	}
	return b.String()
}

// PlainText is the transcript without headers.
func PlainText(chunks []Chunk) string {
	var b strings.Builder
	for _, c := range chunks {
		if c.Text == silence {
			continue
		}
		b.WriteString(c.Text)
		b.WriteString("\n\n")
	}
	return b.String()
}
