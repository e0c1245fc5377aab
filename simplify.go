package pagefeed

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

// AnalysisSelector matches the elements summarized for container analysis.
const AnalysisSelector = `main, article, section, div[class*="content"], div[id*="content"]`

// DefaultItemSelector matches item containers when the caller supplies none.
const DefaultItemSelector = "article, .post, .entry, .thing, li"

// Limits applied to item summaries.
const (
	MaxItemContainers = 20
	MaxItemHTMLLength = 1000
	MaxItemTextLength = 500
)

// ContainerSummary is the compact description of one element sent for
// container analysis.
type ContainerSummary struct {
	Tag        string `json:"tag"`
	ID         string `json:"id,omitempty"`
	Class      string `json:"class,omitempty"`
	TextLength int    `json:"text_length"`
	Selector   string `json:"selector"`
}

// ItemSummary is the compact description of one element sent for item extraction.
type ItemSummary struct {
	HTML string `json:"html"`
	Text string `json:"text"`
}

// SummarizeContainers builds the analysis summary of a document.
func SummarizeContainers(doc Document) string {
	elements := doc.Find(AnalysisSelector)
	summaries := make([]ContainerSummary, 0, len(elements))
	for _, e := range elements {
		summaries = append(summaries, ContainerSummary{
			Tag:        e.Tag,
			ID:         e.ID,
			Class:      e.ClassAttr(),
			TextLength: e.TrimmedTextLength(),
			Selector:   GenerateSelector(e),
		})
	}
	return mustMarshal(summaries)
}

// SummarizeItems builds the item summary of a document from the first
// MaxItemContainers elements matching selector, or DefaultItemSelector
// when selector is blank.
func SummarizeItems(doc Document, selector string) string {
	if strings.TrimSpace(selector) == "" {
		selector = DefaultItemSelector
	}

	elements := doc.Find(selector)
	if len(elements) > MaxItemContainers {
		elements = elements[:MaxItemContainers]
	}

	summaries := make([]ItemSummary, 0, len(elements))
	for _, e := range elements {
		summaries = append(summaries, ItemSummary{
			HTML: Truncate(e.RawHTML, MaxItemHTMLLength),
			Text: Truncate(strings.TrimSpace(e.Text), MaxItemTextLength),
		})
	}
	return mustMarshal(summaries)
}

// Truncate shortens s to at most n characters. A shortened string ends in
// "..." which counts toward n.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	const omission = "..."
	if n <= len(omission) {
		return string([]rune(s)[:n])
	}
	return string([]rune(s)[:n-len(omission)]) + omission
}

func mustMarshal(v any) string {
	buf, err := json.Marshal(v)
	if err != nil {
		// Summaries only hold strings and ints.
		panic(err)
	}
	return string(buf)
}
