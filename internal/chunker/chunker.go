// Package chunker splits text into pieces that fit a size budget.
//
// Sizes are counted in runes. Pieces are contiguous substrings of the input,
// separators included, so concatenating the pieces of an untruncated split
// yields the input back.
package chunker

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// TruncationMarker ends any sentence cut to fit the budget.
const TruncationMarker = "..."

var (
	paragraphBreak = regexp.MustCompile(`\n[ \t]*\n\s*`)
	sentenceBreak  = regexp.MustCompile(`[.!?]+["')\]]*\s+`)
)

// Split breaks text into ordered pieces of at most maxSize runes.
// Paragraphs are packed greedily first; an oversized paragraph is packed
// sentence by sentence; an oversized sentence is truncated with TruncationMarker.
// A non-positive maxSize disables splitting.
func Split(text string, maxSize int) []string {
	if text == "" {
		return nil
	}
	if maxSize <= 0 || Size(text) <= maxSize {
		return []string{text}
	}

	truncate := func(sentence string) []string {
		return []string{Truncate(sentence, maxSize)}
	}
	bySentence := func(paragraph string) []string {
		return pack(splitAfter(paragraph, sentenceBreak), maxSize, truncate)
	}
	return pack(splitAfter(text, paragraphBreak), maxSize, bySentence)
}

// Size returns the length of s in runes.
func Size(s string) int {
	return utf8.RuneCountInString(s)
}

// Truncate cuts s to maxSize runes, marker included. Strings that fit are returned as is.
func Truncate(s string, maxSize int) string {
	if Size(s) <= maxSize {
		return s
	}
	markerSize := Size(TruncationMarker)
	if maxSize <= markerSize {
		return Head(s, maxSize)
	}
	return Head(s, maxSize-markerSize) + TruncationMarker
}

// Head returns the first n runes of s.
func Head(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

func pack(units []string, maxSize int, oversize func(string) []string) []string {
	var (
		out     []string
		cur     strings.Builder
		curSize int
	)
	flush := func() {
		if curSize > 0 {
			out = append(out, cur.String())
			cur.Reset()
			curSize = 0
		}
	}

	for _, u := range units {
		n := Size(u)
		if n > maxSize {
			flush()
			out = append(out, oversize(u)...)
			continue
		}
		if curSize+n > maxSize {
			flush()
		}
		cur.WriteString(u)
		curSize += n
	}
	flush()

	return out
}

// splitAfter cuts text after every separator match, keeping the separator
// attached to the preceding unit.
func splitAfter(text string, sep *regexp.Regexp) []string {
	var units []string
	last := 0
	for _, loc := range sep.FindAllStringIndex(text, -1) {
		if loc[1] <= last {
			continue
		}
		units = append(units, text[last:loc[1]])
		last = loc[1]
	}
	if last < len(text) {
		units = append(units, text[last:])
	}
	return units
}
