// Package ingest parses transcript artifacts into segments.
//
// A transcript is a Markdown file of headed blocks:
//
//	## Chunk 1 [00:00:00 → 00:10:00]
//
//	text...
package ingest

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

// ErrInvalidTranscript is returned for transcripts with no usable segment.
var ErrInvalidTranscript = errors.New("invalid transcript")

const defaultTitle = "Untitled Lecture"

var (
	reChunkHeader = regexp.MustCompile(`^##\s+Chunk\s+\d+\s*\[\s*(\d{1,2}:\d{2}:\d{2})\s*(?:→|->|-->)\s*(\d{1,2}:\d{2}:\d{2})\s*\]\s*$`)
	reTimestamp   = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})$`)
)

// Load reads and parses the transcript at path.
func Load(path string) (*models.TranscriptDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}
	return Parse(string(data))
}

// Parse turns transcript text into a TranscriptDocument. Segments must be
// in time order and must not overlap.
func Parse(content string) (*models.TranscriptDocument, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var (
		segments []models.Segment
		current  *models.Segment
		body     []string
	)
	flush := func() {
		if current == nil {
			return
		}
		current.Text = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Text != "" {
			segments = append(segments, *current)
		}
		current, body = nil, nil
	}

	for lineNo, line := range strings.Split(content, "\n") {
		if m := reChunkHeader.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
			flush()
			start, err := parseTimestamp(m[1])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidTranscript, lineNo+1, err)
			}
			end, err := parseTimestamp(m[2])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidTranscript, lineNo+1, err)
			}
			if end < start {
				return nil, fmt.Errorf("%w: line %d: chunk ends before it starts", ErrInvalidTranscript, lineNo+1)
			}
			current = &models.Segment{Start: start, End: end}
			continue
		}
		if strings.HasPrefix(line, "## ") {
			flush()
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no timestamped chunks found", ErrInvalidTranscript)
	}
	for i := 1; i < len(segments); i++ {
		if segments[i].Start < segments[i-1].End {
			return nil, fmt.Errorf("%w: chunk %d overlaps the previous chunk", ErrInvalidTranscript, i+1)
		}
	}

	doc := &models.TranscriptDocument{
		Segments:      segments,
		TotalDuration: segments[len(segments)-1].End,
	}
	doc.Title = deriveTitle(doc)

	return doc, nil
}

// deriveTitle picks the first meaningful line of the transcript, cut to eight words.
func deriveTitle(doc *models.TranscriptDocument) string {
	for _, seg := range doc.Segments {
		for _, line := range strings.Split(seg.Text, "\n") {
			line = strings.TrimSpace(line)
			if len(line) <= 20 || strings.Contains(line, "Chunk") || strings.HasPrefix(line, "#") {
				continue
			}
			words := strings.Fields(line)
			if len(words) > 8 {
				words = words[:8]
			}
			return strings.TrimRight(strings.Join(words, " "), ".,;:!?")
		}
	}
	return defaultTitle
}

func parseTimestamp(s string) (time.Duration, error) {
	m := reTimestamp.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("bad timestamp %q", s)
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	sec, _ := strconv.Atoi(m[3])
	if mins > 59 || sec > 59 {
		return 0, fmt.Errorf("bad timestamp %q", s)
	}
	return time.Duration(h)*time.Hour + time.Duration(mins)*time.Minute + time.Duration(sec)*time.Second, nil
}

// FormatTimestamp renders d as HH:MM:SS.
func FormatTimestamp(d time.Duration) string {
	total := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
