package pagefeed

import (
	"strings"
	"unicode/utf8"
)

// CandidateSelector matches every element that may be a content container.
const CandidateSelector = "div, article, section, main, aside"

// MinCandidateTextLength is the trimmed text length a candidate must exceed.
const MinCandidateTextLength = 50

// containerIndicators are words that hint at main content when found in
// an element's class list or id.
var containerIndicators = []string{"content", "main", "article", "post", "entry", "body", "text"}

var candidateTags = map[string]bool{
	"div":     true,
	"article": true,
	"section": true,
	"main":    true,
	"aside":   true,
}

// IsCandidate reports whether an element qualifies for container scoring.
func IsCandidate(e Element) bool {
	return candidateTags[strings.ToLower(e.Tag)] && e.TrimmedTextLength() > MinCandidateTextLength
}

// ScoreContainer computes the heuristic relevance of a candidate element.
// It is a pure function of the element. Scores are unbounded above.
func ScoreContainer(e Element) float64 {
	var score float64

	if htmlLen := utf8.RuneCountInString(e.RawHTML); htmlLen > 0 {
		score += 40 * float64(e.TrimmedTextLength()) / float64(htmlLen)
	}

	score += semanticBonus(e.Tag)
	score += keywordBonus(e.ID, e.ClassAttr())

	return score + positionBonus(e.AncestorDepth)
}

func semanticBonus(tag string) float64 {
	switch strings.ToLower(tag) {
	case "article", "main":
		return 20
	case "section":
		return 10
	}
	return 0
}

// keywordBonus adds 15 per indicator found in the class list and 20 per
// indicator found in the id. Matches are substring matches and stack.
func keywordBonus(id, classes string) float64 {
	id = strings.ToLower(id)
	classes = strings.ToLower(classes)

	var bonus float64
	for _, word := range containerIndicators {
		if classes != "" && strings.Contains(classes, word) {
			bonus += 15
		}
		if id != "" && strings.Contains(id, word) {
			bonus += 20
		}
	}
	return bonus
}

func positionBonus(depth int) float64 {
	return 0.1 * float64(max(0, 100-depth))
}

// SelectCandidates returns the document's candidate containers in document order.
func SelectCandidates(doc Document) []Element {
	var candidates []Element
	for _, e := range doc.Find(CandidateSelector) {
		if IsCandidate(e) {
			candidates = append(candidates, e)
		}
	}
	return candidates
}

// SelectBest returns the highest scoring candidate of a document along
// with its score. Ties go to the element that comes first in the document.
// Returns ENOCONTENT when no element qualifies.
func SelectBest(doc Document) (Element, float64, error) {
	candidates := SelectCandidates(doc)
	if len(candidates) == 0 {
		return Element{}, 0, Errorf(ENOCONTENT, "no content container found")
	}

	best, bestScore := candidates[0], ScoreContainer(candidates[0])
	for _, e := range candidates[1:] {
		if s := ScoreContainer(e); s > bestScore {
			best, bestScore = e, s
		}
	}
	return best, bestScore, nil
}
