package pagefeed

import (
	"context"
	"time"
)

// AnalysisMethod identifies which path produced a container descriptor.
type AnalysisMethod string

// Analysis methods.
const (
	AnalysisHeuristic AnalysisMethod = "heuristic"
	AnalysisExternal  AnalysisMethod = "external"
)

// ContainerDescriptor describes the element judged to hold a page's
// primary content.
type ContainerDescriptor struct {
	Selector        string   `json:"selector"`
	ConfidenceScore float64  `json:"confidence_score"`
	TagName         string   `json:"tag_name"`
	ClassNames      []string `json:"class_names"`
	ID              string   `json:"id,omitempty"`
	Reasoning       string   `json:"reasoning,omitempty"`
}

// NewContainerDescriptor describes element e as found through selector.
func NewContainerDescriptor(e Element, selector string, score float64, reasoning string) ContainerDescriptor {
	classes := make([]string, len(e.Classes))
	copy(classes, e.Classes)
	return ContainerDescriptor{
		Selector:        selector,
		ConfidenceScore: score,
		TagName:         e.Tag,
		ClassNames:      classes,
		ID:              e.ID,
		Reasoning:       reasoning,
	}
}

// Analysis is the result of analyzing one page.
type Analysis struct {
	URL              string              `json:"url"`
	PrimaryContainer ContainerDescriptor `json:"primary_container"`
	AnalyzedAt       time.Time           `json:"analyzed_at"`
	AnalysisMethod   AnalysisMethod      `json:"analysis_method"`
}

// Analyzer locates the primary content container of a page.
type Analyzer interface {
	// Analyze fetches the page at url and describes its best container.
	// Returns EINVALID for a blank url, EFETCH, ENOCONTENT or ESELECTOR.
	Analyze(ctx context.Context, url string) (*Analysis, error)
}

// ContainerSuggestion is a strategy's pick for the best container.
type ContainerSuggestion struct {
	Selector        string  `json:"selector"`
	ConfidenceScore float64 `json:"confidence_score"`
	Reasoning       string  `json:"reasoning"`
}

// FallbackContainer is the suggestion used when a strategy is unavailable.
func FallbackContainer() *ContainerSuggestion {
	return &ContainerSuggestion{
		Selector:        "main",
		ConfidenceScore: 50,
		Reasoning:       "AI analysis failed, using fallback",
	}
}
