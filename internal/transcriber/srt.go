package transcriber

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Cue is one timed subtitle entry.
type Cue struct {
	Start time.Duration
	End   time.Duration
	Text  string
}

var reCueTiming = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})\s*-->\s*(\d{2,}):(\d{2}):(\d{2})[,.](\d{3})`)

// ParseSRT reads SubRip content. Blocks without a timing line are skipped;
// whisper.cpp sometimes emits blank trailing blocks.
func ParseSRT(content string) ([]Cue, error) {
	content = strings.TrimPrefix(content, "\uFEFF")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var cues []Cue
	for _, block := range strings.Split(content, "\n\n") {
		lines := strings.Split(strings.TrimSpace(block), "\n")

		timing := -1
		for i, l := range lines {
			if reCueTiming.MatchString(strings.TrimSpace(l)) {
				timing = i
				break
			}
		}
		if timing < 0 {
			continue
		}

		m := reCueTiming.FindStringSubmatch(strings.TrimSpace(lines[timing]))
		cue := Cue{
			Start: srtTime(m[1:5]),
			End:   srtTime(m[5:9]),
			Text:  strings.TrimSpace(strings.Join(lines[timing+1:], " ")),
		}
		if cue.End < cue.Start {
			return nil, fmt.Errorf("cue at %s ends before it starts", lines[timing])
		}
		if cue.Text != "" {
			cues = append(cues, cue)
		}
	}

	if len(cues) == 0 {
		return nil, errors.New("no subtitle cues found")
	}
	return cues, nil
}

func srtTime(parts []string) time.Duration {
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	s, _ := strconv.Atoi(parts[2])
	ms, _ := strconv.Atoi(parts[3])
	return time.Duration(h)*time.Hour + time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second + time.Duration(ms)*time.Millisecond
}
