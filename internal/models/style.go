package models

// Style carries the presentation choices every generating stage reads.
type Style struct {
	Difficulty     DifficultyLevel
	Framework      PedagogicalFramework
	Audience       string
	Sophistication Sophistication
	Language       string
	MathFormulas   bool
	CodeExamples   bool
}

// DefaultStyle is the style used when a build does not set one.
func DefaultStyle() Style {
	return Style{
		Difficulty:     DifficultyIntermediate,
		Framework:      FrameworkStandard,
		Audience:       "students and professionals",
		Sophistication: SophisticationTechnical,
		Language:       "French",
	}
}
