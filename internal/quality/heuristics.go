package quality

import (
	"math"
	"regexp"
	"strings"
)

var techVocabulary = map[string][]string{
	"ai_ml": {
		"neural network", "deep learning", "machine learning", "algorithm",
		"gradient descent", "backpropagation", "overfitting", "underfitting",
		"cross-validation", "regularization", "feature engineering",
	},
	"computer_vision": {
		"convolutional", "pooling", "feature map", "object detection",
		"segmentation", "classification", "augmentation",
	},
	"nlp": {
		"tokenization", "embedding", "attention mechanism", "transformer",
		"bert", "gpt", "language model", "preprocessing",
	},
}

var domainKeywords = []struct {
	domain   string
	keywords []string
}{
	{"ai_ml", []string{"intelligence artificielle", "artificial intelligence", "machine learning", "neural", "deep learning"}},
	{"computer_vision", []string{"computer vision", "image", "vision", "opencv"}},
	{"nlp", []string{"natural language", "nlp", "text processing", "language model"}},
}

var techTermPatterns []*regexp.Regexp

func init() {
	for _, domain := range []string{"ai_ml", "computer_vision", "nlp"} {
		for _, term := range techVocabulary[domain] {
			techTermPatterns = append(techTermPatterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(term)+`\b`))
		}
	}
}

var (
	reSentenceBreak = regexp.MustCompile(`[.!?]+\s+`)
	reBold          = regexp.MustCompile(`\*\*([^*\n]+)\*\*`)
	reDashItem      = regexp.MustCompile(`(?m)^\s*- `)
	reStarItem      = regexp.MustCompile(`(?m)^\s*\* `)
	reTightHeading  = regexp.MustCompile(`(?m)^#{1,6}[^#\s]`)
	reTrailingSpace = regexp.MustCompile(`(?m)[ \t]{3,}$`)
)

// detectDomain picks the domain with the most keyword hits; ties go to the
// earliest domain.
func detectDomain(lower string) string {
	best, bestScore := domainKeywords[0].domain, -1
	for _, d := range domainKeywords {
		score := 0
		for _, kw := range d.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = d.domain, score
		}
	}
	return best
}

func splitSentences(text string) []string {
	var out []string
	for _, s := range reSentenceBreak.Split(text, -1) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// countComplexWords counts words longer than 8 letters or with more than 3 syllables.
func countComplexWords(words []string) int {
	n := 0
	for _, w := range words {
		clean := reNonWord.ReplaceAllString(strings.ToLower(w), "")
		if len([]rune(clean)) > 8 || syllables(clean) > 3 {
			n++
		}
	}
	return n
}

// syllables estimates syllables as runs of vowels.
func syllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range word {
		v := strings.ContainsRune("aeiouyàâäéèêëîïôöùûü", r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}
	return max(1, count)
}

func countTechnicalTerms(lower string) int {
	n := 0
	for _, re := range techTermPatterns {
		n += len(re.FindAllStringIndex(lower, -1))
	}
	return n
}

var (
	basicMarkers    = []string{"basique", "simple", "basic", "fondamental", "fundamental"}
	advancedMarkers = []string{"avancé", "complexe", "expert", "advanced", "complex"}
)

// difficultyProgression rewards documents that introduce basic material
// before advanced material.
func difficultyProgression(lower string) float64 {
	first := func(markers []string) int {
		pos := -1
		for _, m := range markers {
			if i := strings.Index(lower, m); i >= 0 && (pos < 0 || i < pos) {
				pos = i
			}
		}
		return pos
	}

	basic, advanced := first(basicMarkers), first(advancedMarkers)
	switch {
	case basic < 0 || advanced < 0:
		return 0.7
	case basic < advanced:
		return 0.9
	default:
		return 0.6
	}
}

// terminologyInconsistencies reports vocabulary terms written both with a
// space and with a hyphen.
func terminologyInconsistencies(lower string) []string {
	found := make(map[string]bool)
	for _, domain := range []string{"ai_ml", "computer_vision", "nlp"} {
		for _, term := range techVocabulary[domain] {
			if !strings.Contains(term, " ") {
				continue
			}
			hyphenated := strings.ReplaceAll(term, " ", "-")
			if strings.Contains(lower, term) && strings.Contains(lower, hyphenated) {
				found[term+" / "+hyphenated] = true
			}
		}
	}

	bold := make(map[string]string)
	for _, m := range reBold.FindAllStringSubmatch(lower, -1) {
		term := strings.TrimSpace(m[1])
		key := strings.NewReplacer("-", "", " ", "").Replace(term)
		if prev, ok := bold[key]; ok && prev != term {
			found[prev+" / "+term] = true
		} else if !ok {
			bold[key] = term
		}
	}

	return sortedKeys(found)
}

func formattingIssues(text string) []string {
	var issues []string
	if reDashItem.MatchString(text) && reStarItem.MatchString(text) {
		issues = append(issues, "Use a single bullet marker for lists")
	}
	if reTightHeading.MatchString(text) {
		issues = append(issues, "Separate heading markers from their text with a space")
	}
	if reTrailingSpace.MatchString(text) {
		issues = append(issues, "Remove trailing whitespace")
	}
	return issues
}

// styleConsistency penalizes widely varying sentence lengths.
func styleConsistency(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) < 2 {
		return 0.7
	}

	lengths := make([]float64, len(sentences))
	mean := 0.0
	for i, s := range sentences {
		lengths[i] = float64(len(strings.Fields(s)))
		mean += lengths[i]
	}
	mean /= float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths))

	cv := math.Sqrt(variance) / mean
	return 1 - 0.5*math.Min(cv, 1)
}

// languageClarity is the share of sentences of at most 25 words.
func languageClarity(text string) float64 {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return 0.5
	}
	short := 0
	for _, s := range sentences {
		if len(strings.Fields(s)) <= 25 {
			short++
		}
	}
	return float64(short) / float64(len(sentences))
}
