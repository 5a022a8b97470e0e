package quality

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/berch-t/youtube-to-courses/internal/models"
)

var (
	reSection    = regexp.MustCompile(`###?\s+(.+)`)
	reHeading    = regexp.MustCompile(`(?m)^#+\s+(.+)`)
	reMath       = regexp.MustCompile(`\$[^$\n]+\$|\\\[.*?\\\]`)
	reObjectives = regexp.MustCompile(`objectif|objective|goal`)
	reAssessment = regexp.MustCompile(`question|exercice|exercise|évaluation|assessment|test|quiz`)
	reExample    = regexp.MustCompile(`exemple|example|illustration|démonstration|demonstration`)
	reModule     = regexp.MustCompile(`module \d+|chapitre \d+|chapter \d+`)
	reQuestion   = regexp.MustCompile(`\?`)
	reImageMD    = regexp.MustCompile(`!\[([^\]]*)\]`)
	reImageHTML  = regexp.MustCompile(`<img[^>]+alt=["']([^"']*)["']`)
	reColor      = regexp.MustCompile(`\b(rouge|vert|bleu|yellow|red|green|blue)\b`)
	reNonWord    = regexp.MustCompile(`[^\p{L}\p{N}_]`)
)

var requiredSections = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{"introduction", regexp.MustCompile(`introduction|présentation|overview`)},
	{"objectives", reObjectives},
	{"content", regexp.MustCompile(`contenu|content|développement`)},
	{"examples", reExample},
	{"assessment", regexp.MustCompile(`évaluation|assessment|question|exercice|exercise`)},
}

var interactivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`question|pourquoi|comment|why|how`),
	regexp.MustCompile(`exercice|pratiquez|essayez|exercise|practice|try`),
	regexp.MustCompile(`réfléchissez|pensez|analysez|reflect|think|analyze`),
	regexp.MustCompile(`🤔|🤝|💡|🔍|💭`),
}

var engagingWords = []string{
	"découvrez", "explorez", "imaginez", "visualisez",
	"remarquez", "observez", "comparez", "analysez",
	"discover", "explore", "imagine", "notice", "compare",
}

var (
	sentenceLengthTarget = map[models.DifficultyLevel]float64{
		models.DifficultyBeginner: 15, models.DifficultyIntermediate: 20,
		models.DifficultyAdvanced: 25, models.DifficultyExpert: 30,
	}
	complexRatioTarget = map[models.DifficultyLevel]float64{
		models.DifficultyBeginner: 0.1, models.DifficultyIntermediate: 0.15,
		models.DifficultyAdvanced: 0.25, models.DifficultyExpert: 0.35,
	}
	techDensityTarget = map[models.DifficultyLevel]float64{
		models.DifficultyBeginner: 0.05, models.DifficultyIntermediate: 0.1,
		models.DifficultyAdvanced: 0.2, models.DifficultyExpert: 0.3,
	}
	wordLengthTarget = map[models.Sophistication]float64{
		models.SophisticationSimple: 5, models.SophisticationTechnical: 6, models.SophisticationAcademic: 7,
	}
)

func (a *implAssessor) technicalAccuracy(text string) models.QualityMetric {
	m := metric(models.DimensionTechnicalAccuracy)
	lower := strings.ToLower(text)
	score := 0.8

	vocab := techVocabulary[detectDomain(lower)]
	found := 0
	for _, term := range vocab {
		if strings.Contains(lower, term) {
			found++
		}
	}
	if len(vocab) > 0 {
		score = (score + float64(found)/float64(len(vocab))) / 2
	}

	if strings.Contains(lower, "réseau neuronal") {
		m.Suggestions = append(m.Suggestions, "Prefer 'réseau de neurones' over 'réseau neuronal'")
	}
	if strings.Contains(lower, "apprentissage machine") {
		m.Suggestions = append(m.Suggestions, "Prefer 'apprentissage automatique' over 'apprentissage machine'")
	}

	if n := len(reMath.FindAllString(text, -1)); n > 0 {
		m.Details["math_formulas"] = n
		if a.style.MathFormulas {
			score += 0.1
		}
	}

	m.Details["terminology"] = fmt.Sprintf("%d/%d", found, len(vocab))
	m.Score = score
	return m
}

func (a *implAssessor) pedagogicalFlow(text string) models.QualityMetric {
	m := metric(models.DimensionPedagogicalFlow)
	lower := strings.ToLower(text)
	score := 0.7

	sections := len(reSection.FindAllString(text, -1))
	if sections < 3 {
		m.CriticalIssues = append(m.CriticalIssues, "Insufficient structure: fewer than 3 sections")
		score -= 0.3
	}
	if reObjectives.MatchString(lower) {
		score += 0.1
	} else {
		m.Suggestions = append(m.Suggestions, "Add clear learning objectives")
	}
	if reAssessment.MatchString(lower) {
		score += 0.1
	} else {
		m.Suggestions = append(m.Suggestions, "Add assessment elements")
	}
	if n := len(reExample.FindAllString(lower, -1)); n >= 3 {
		score += 0.1
		m.Details["examples"] = n
	} else {
		m.Suggestions = append(m.Suggestions, "Add more concrete examples")
	}

	score = (score + difficultyProgression(lower)) / 2

	m.Details["sections"] = sections
	m.Details["framework"] = string(a.style.Framework)
	m.Score = score
	return m
}

func (a *implAssessor) readability(text string) models.QualityMetric {
	m := metric(models.DimensionReadability)
	sentences := splitSentences(text)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		m.Suggestions = append(m.Suggestions, "Check the document content")
		m.CriticalIssues = append(m.CriticalIssues, "Missing content")
		return m
	}

	level := a.style.Difficulty
	if _, ok := sentenceLengthTarget[level]; !ok {
		level = models.DifficultyIntermediate
	}
	score := 0.7

	avgSentence := float64(len(words)) / float64(len(sentences))
	target := sentenceLengthTarget[level]
	switch {
	case avgSentence <= target*1.2:
		score += 0.1
	case avgSentence > target*1.5:
		m.Suggestions = append(m.Suggestions, fmt.Sprintf("Sentences are too long (average %.1f words, target %.0f)", avgSentence, target))
		score -= 0.1
	}

	complexRatio := float64(countComplexWords(words)) / float64(len(words))
	expected := complexRatioTarget[level]
	switch {
	case complexRatio <= expected*1.2:
		score += 0.1
	case complexRatio > expected*1.5:
		m.Suggestions = append(m.Suggestions, fmt.Sprintf("Too many complex words (%.0f%%, target %.0f%%)", complexRatio*100, expected*100))
		score -= 0.1
	}

	techDensity := float64(countTechnicalTerms(strings.ToLower(text))) / float64(len(words))
	expectedTech := techDensityTarget[level]
	switch {
	case techDensity <= expectedTech*1.2:
		score += 0.05
	case techDensity > expectedTech*1.5:
		m.Suggestions = append(m.Suggestions, fmt.Sprintf("High terminology density (%.0f%%)", techDensity*100))
	}

	score = (score + a.languageSophistication(words)) / 2

	m.Details["avg_sentence_length"] = avgSentence
	m.Details["complex_word_ratio"] = complexRatio
	m.Details["technical_density"] = techDensity
	m.Score = score
	return m
}

func completeness(text string) models.QualityMetric {
	m := metric(models.DimensionCompleteness)
	lower := strings.ToLower(text)

	present := 0
	for _, s := range requiredSections {
		if s.pattern.MatchString(lower) {
			present++
		} else {
			m.Suggestions = append(m.Suggestions, "Add section: "+s.name)
		}
	}
	score := float64(present) / float64(len(requiredSections))

	length := len([]rune(text))
	switch {
	case length < 5000:
		m.Suggestions = append(m.Suggestions, "Content may be too short for a complete course")
		score -= 0.1
	case length > 50000:
		m.Suggestions = append(m.Suggestions, "Content is very long; check concision")
	}

	modules := len(reModule.FindAllString(lower, -1))
	if modules < 3 {
		m.CriticalIssues = append(m.CriticalIssues, fmt.Sprintf("Not enough modules: %d", modules))
		score -= 0.2
	}

	m.Details["sections_present"] = fmt.Sprintf("%d/%d", present, len(requiredSections))
	m.Details["length"] = length
	m.Details["modules"] = modules
	m.Score = score
	return m
}

func consistency(text string) models.QualityMetric {
	m := metric(models.DimensionConsistency)
	lower := strings.ToLower(text)
	score := 0.8

	inconsistencies := terminologyInconsistencies(lower)
	score -= 0.1 * float64(len(inconsistencies))
	for _, i := range inconsistencies {
		m.Suggestions = append(m.Suggestions, "Standardize: "+i)
	}

	formatting := formattingIssues(text)
	score -= 0.05 * float64(len(formatting))
	m.Suggestions = append(m.Suggestions, formatting...)

	score = (score + styleConsistency(text)) / 2

	m.Details["inconsistencies"] = len(inconsistencies)
	m.Score = score
	return m
}

func engagement(text string) models.QualityMetric {
	m := metric(models.DimensionEngagement)
	lower := strings.ToLower(text)
	score := 0.7

	interactive := 0
	for _, p := range interactivePatterns {
		interactive += len(p.FindAllString(lower, -1))
	}
	switch {
	case interactive >= 10:
		score += 0.2
	case interactive < 5:
		m.Suggestions = append(m.Suggestions, "Add more interactive elements")
	}

	engaging := 0
	for _, w := range engagingWords {
		if strings.Contains(lower, w) {
			engaging++
		}
	}
	if engaging >= 5 {
		score += 0.1
	}

	questions := len(reQuestion.FindAllString(text, -1))
	if questions >= 5 {
		score += 0.1
	} else {
		m.Suggestions = append(m.Suggestions, "Add more questions to engage the reader")
	}

	m.Details["interactive_elements"] = interactive
	m.Details["engaging_words"] = engaging
	m.Details["questions"] = questions
	m.Score = score
	return m
}

func accessibility(text string) models.QualityMetric {
	m := metric(models.DimensionAccessibility)
	score := 0.8

	total, withAlt := 0, 0
	for _, re := range []*regexp.Regexp{reImageMD, reImageHTML} {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			total++
			if strings.TrimSpace(match[1]) != "" {
				withAlt++
			}
		}
	}
	if total > 0 {
		ratio := float64(withAlt) / float64(total)
		score = (score + ratio) / 2
		if ratio < 0.8 {
			m.Suggestions = append(m.Suggestions, "Add alternative text to images")
		}
		m.Details["images_with_alt"] = fmt.Sprintf("%d/%d", withAlt, total)
	}

	headings := len(reHeading.FindAllString(text, -1))
	if headings >= 5 {
		score += 0.1
	} else {
		m.Suggestions = append(m.Suggestions, "Improve structure with more headings")
	}

	score = (score + languageClarity(text)) / 2

	if reColor.MatchString(strings.ToLower(text)) {
		m.Suggestions = append(m.Suggestions, "Avoid conveying information through colour alone")
		score -= 0.1
	}

	m.Details["headings"] = headings
	m.Score = score
	return m
}

func metric(dimension string) models.QualityMetric {
	return models.QualityMetric{
		Dimension: dimension,
		Details:   make(map[string]any),
	}
}

func (a *implAssessor) languageSophistication(words []string) float64 {
	target, ok := wordLengthTarget[a.style.Sophistication]
	if !ok {
		target = wordLengthTarget[models.SophisticationTechnical]
	}

	letters, counted := 0, 0
	for _, w := range words {
		clean := reNonWord.ReplaceAllString(w, "")
		if clean == "" {
			continue
		}
		letters += len([]rune(clean))
		counted++
	}
	if counted == 0 {
		return 0
	}
	avg := float64(letters) / float64(counted)
	return clamp(1 - math.Abs(avg-target)/target)
}
