package models

import "time"

// Segment is one time-bounded slice of transcript text.
type Segment struct {
	Start time.Duration
	End   time.Duration
	Text  string

	// SuggestedReferences holds paper identifiers attached by the research stage.
	SuggestedReferences []string
}

// TranscriptDocument is the parsed transcript. It is not modified after ingestion.
type TranscriptDocument struct {
	Title         string
	TotalDuration time.Duration
	Segments      []Segment
}

// Text concatenates all segment text separated by single spaces.
func (d *TranscriptDocument) Text() string {
	n := 0
	for _, s := range d.Segments {
		n += len(s.Text) + 1
	}
	buf := make([]byte, 0, n)
	for i, s := range d.Segments {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, s.Text...)
	}
	return string(buf)
}

// Module is one thematic unit of the course.
type Module struct {
	Index               int
	Title               string
	EstimatedDuration   string
	Difficulty          int
	KeyConcepts         []string
	BodyText            string
	LearningObjectives  []string
	ReflectionQuestions []string
	Resources           []string
	Prerequisites       []string
	SuggestedReferences []string
	BloomObjectives     []string
	Assessments         []string

	// Segments is the ordered slice of transcript segments owned by the module.
	Segments []Segment
}

// SegmentText joins the module's segment text in transcript order.
func (m *Module) SegmentText() string {
	doc := TranscriptDocument{Segments: m.Segments}
	return doc.Text()
}

// ResearchPaper is a reference discovered by the research stage.
type ResearchPaper struct {
	Identifier      string   `json:"identifier"`
	Title           string   `json:"title"`
	Authors         []string `json:"authors"`
	Abstract        string   `json:"abstract"`
	SourceURL       string   `json:"source_url"`
	PublicationYear int      `json:"publication_year"`
	Published       string   `json:"published"`
	Categories      []string `json:"categories"`
	RelevanceScore  float64  `json:"relevance_score"`
	Source          string   `json:"source"`
}

// SourceType classifies a citation.
type SourceType string

const (
	SourceArXiv   SourceType = "arxiv"
	SourceJournal SourceType = "journal"
	SourceWebsite SourceType = "website"
	SourceGeneric SourceType = "generic"
)

// Citation is the bibliographic record behind an in-text placeholder.
type Citation struct {
	Identifier string
	Title      string
	Authors    []string
	Year       string
	SourceType SourceType
	Journal    string
	DOI        string
	ArXivID    string
	URL        string

	// Placeholder marks records whose fields could not be resolved.
	Placeholder bool
}

// Quality dimensions. The set is fixed: overall scores are always the mean of all seven.
const (
	DimensionTechnicalAccuracy = "technical_accuracy"
	DimensionPedagogicalFlow   = "pedagogical_flow"
	DimensionReadability       = "readability"
	DimensionCompleteness      = "completeness"
	DimensionConsistency       = "consistency"
	DimensionEngagement        = "engagement"
	DimensionAccessibility     = "accessibility"
)

// QualityDimensions lists the dimensions in report order.
var QualityDimensions = []string{
	DimensionTechnicalAccuracy,
	DimensionPedagogicalFlow,
	DimensionReadability,
	DimensionCompleteness,
	DimensionConsistency,
	DimensionEngagement,
	DimensionAccessibility,
}

type QualityMetric struct {
	Dimension      string         `json:"dimension"`
	Score          float64        `json:"score"`
	Details        map[string]any `json:"details"`
	Suggestions    []string       `json:"suggestions"`
	CriticalIssues []string       `json:"critical_issues"`
}

type QualityReport struct {
	OverallScore    float64            `json:"overall_score"`
	DimensionScores map[string]float64 `json:"dimension_scores"`
	Metrics         []QualityMetric    `json:"metrics"`
	Suggestions     []string           `json:"suggestions"`
	CriticalIssues  []string           `json:"critical_issues"`
	Timestamp       time.Time          `json:"timestamp"`
}

// ValidationWarning is a non-fatal finding from templating, quality or export.
type ValidationWarning struct {
	Stage   string `json:"stage"`
	Message string `json:"message"`
}
