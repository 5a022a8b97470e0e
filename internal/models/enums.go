package models

import (
	"fmt"
	"strings"
)

type DifficultyLevel string

const (
	DifficultyBeginner     DifficultyLevel = "beginner"
	DifficultyIntermediate DifficultyLevel = "intermediate"
	DifficultyAdvanced     DifficultyLevel = "advanced"
	DifficultyExpert       DifficultyLevel = "expert"
)

func ParseDifficultyLevel(s string) (DifficultyLevel, error) {
	switch v := DifficultyLevel(normalize(s)); v {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyExpert:
		return v, nil
	default:
		return "", fmt.Errorf("unknown difficulty level %q", s)
	}
}

type PedagogicalFramework string

const (
	FrameworkStandard        PedagogicalFramework = "standard"
	FrameworkBloomsTaxonomy  PedagogicalFramework = "blooms_taxonomy"
	FrameworkConstructivist  PedagogicalFramework = "constructivist"
	FrameworkCompetencyBased PedagogicalFramework = "competency_based"
)

func ParsePedagogicalFramework(s string) (PedagogicalFramework, error) {
	switch v := PedagogicalFramework(normalize(s)); v {
	case FrameworkStandard, FrameworkBloomsTaxonomy, FrameworkConstructivist, FrameworkCompetencyBased:
		return v, nil
	default:
		return "", fmt.Errorf("unknown pedagogical framework %q", s)
	}
}

type CitationStyle string

const (
	CitationBasic    CitationStyle = "basic"
	CitationAcademic CitationStyle = "academic"
	CitationDoctoral CitationStyle = "doctoral"
	CitationIEEE     CitationStyle = "ieee"
	CitationAPA      CitationStyle = "apa"
	CitationChicago  CitationStyle = "chicago"
)

func ParseCitationStyle(s string) (CitationStyle, error) {
	switch v := CitationStyle(normalize(s)); v {
	case CitationBasic, CitationAcademic, CitationDoctoral, CitationIEEE, CitationAPA, CitationChicago:
		return v, nil
	default:
		return "", fmt.Errorf("unknown citation style %q", s)
	}
}

// Numbered reports whether the style cites with bracketed numbers.
func (s CitationStyle) Numbered() bool {
	switch s {
	case CitationDoctoral, CitationAPA, CitationChicago:
		return false
	default:
		return true
	}
}

type TemplateStyle string

const (
	TemplateModern    TemplateStyle = "modern"
	TemplateAcademic  TemplateStyle = "academic"
	TemplateResearch  TemplateStyle = "research"
	TemplateClassic   TemplateStyle = "classic"
	TemplateCorporate TemplateStyle = "corporate"
)

func ParseTemplateStyle(s string) (TemplateStyle, error) {
	switch v := TemplateStyle(normalize(s)); v {
	case TemplateModern, TemplateAcademic, TemplateResearch, TemplateClassic, TemplateCorporate:
		return v, nil
	default:
		return "", fmt.Errorf("unknown template style %q", s)
	}
}

type Sophistication string

const (
	SophisticationSimple    Sophistication = "simple"
	SophisticationTechnical Sophistication = "technical"
	SophisticationAcademic  Sophistication = "academic"
)

func ParseSophistication(s string) (Sophistication, error) {
	switch v := Sophistication(normalize(s)); v {
	case SophisticationSimple, SophisticationTechnical, SophisticationAcademic:
		return v, nil
	default:
		return "", fmt.Errorf("unknown language sophistication %q", s)
	}
}

type ProcessingMode string

const (
	ModeFast    ProcessingMode = "fast"
	ModeQuality ProcessingMode = "quality"
	ModeSOTA    ProcessingMode = "sota"
)

func ParseProcessingMode(s string) (ProcessingMode, error) {
	switch v := ProcessingMode(normalize(s)); v {
	case ModeFast, ModeQuality, ModeSOTA:
		return v, nil
	default:
		return "", fmt.Errorf("unknown processing mode %q", s)
	}
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}
