package goquery

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagefeed"
)

var _ pagefeed.AnalysisStrategy = (*HeuristicStrategy)(nil)

// maxHeuristicTitleLength caps titles taken from container text.
const maxHeuristicTitleLength = 200

// HeuristicStrategy implements pagefeed.AnalysisStrategy without any
// external service. Containers are ranked with the pagefeed scoring rules
// and items are read from headings, anchors and time elements.
//
// The CLI and server use it for item extraction only. Container analysis
// without an external strategy runs the scorer over the full document,
// which unlike a summary includes the text density term. AnalyzeContainers
// serves callers that only hold a container summary.
type HeuristicStrategy struct{}

// NewHeuristicStrategy creates a new HeuristicStrategy.
func NewHeuristicStrategy() *HeuristicStrategy {
	return &HeuristicStrategy{}
}

// Method reports that suggestions are heuristic.
func (s *HeuristicStrategy) Method() pagefeed.AnalysisMethod {
	return pagefeed.AnalysisHeuristic
}

// AnalyzeContainers ranks the summarized containers. Summaries carry no
// HTML, so the text density term does not contribute.
func (s *HeuristicStrategy) AnalyzeContainers(_ context.Context, structure string) (*pagefeed.ContainerSuggestion, error) {
	var summaries []pagefeed.ContainerSummary
	if err := json.Unmarshal([]byte(structure), &summaries); err != nil {
		return nil, pagefeed.Errorf(pagefeed.EUNAVAILABLE, "invalid container summary: %v", err)
	}

	var best *pagefeed.ContainerSuggestion
	considered := 0
	for _, summary := range summaries {
		if summary.TextLength <= pagefeed.MinCandidateTextLength {
			continue
		}
		considered++

		score := pagefeed.ScoreContainer(pagefeed.Element{
			Tag:     summary.Tag,
			ID:      summary.ID,
			Classes: strings.Fields(summary.Class),
		})
		if best == nil || score > best.ConfidenceScore {
			best = &pagefeed.ContainerSuggestion{
				Selector:        summary.Selector,
				ConfidenceScore: score,
			}
		}
	}

	if best == nil {
		return nil, pagefeed.Errorf(pagefeed.EUNAVAILABLE, "no summarized container qualifies")
	}
	best.Reasoning = fmt.Sprintf("highest heuristic score among %d qualifying containers", considered)
	return best, nil
}

// ExtractFeedItems reads one item per summarized container. Containers
// with neither a title nor a link are skipped.
func (s *HeuristicStrategy) ExtractFeedItems(_ context.Context, structure, _ string) (*pagefeed.RawFeed, error) {
	var summaries []pagefeed.ItemSummary
	if err := json.Unmarshal([]byte(structure), &summaries); err != nil {
		return nil, pagefeed.Errorf(pagefeed.EUNAVAILABLE, "invalid item summary: %v", err)
	}

	feed := &pagefeed.RawFeed{Items: []*pagefeed.RawItem{}}
	for _, summary := range summaries {
		item, ok := extractItem(summary)
		if !ok {
			continue
		}
		feed.Items = append(feed.Items, item)
	}
	return feed, nil
}

func extractItem(summary pagefeed.ItemSummary) (*pagefeed.RawItem, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary.HTML))
	if err != nil {
		return nil, false
	}

	anchor := firstLink(doc)
	item := &pagefeed.RawItem{
		Title:       firstHeading(doc),
		PublishedAt: firstTimestamp(doc),
	}
	if anchor != nil {
		item.Link, _ = anchor.Attr("href")
		if item.Title == "" {
			item.Title = collapseSpace(anchor.Text())
		}
	}
	if item.Title == "" {
		item.Title = pagefeed.Truncate(collapseSpace(summary.Text), maxHeuristicTitleLength)
	}

	if item.Title == "" && item.Link == "" {
		return nil, false
	}
	return item, true
}

func firstHeading(doc *goquery.Document) string {
	return collapseSpace(doc.Find("h1, h2, h3, h4, h5, h6").First().Text())
}

// firstLink returns the first anchor pointing somewhere other than the
// current page or a script.
func firstLink(doc *goquery.Document) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("a[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		href, _ := sel.Attr("href")
		href = strings.ToLower(strings.TrimSpace(href))
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return true
		}
		found = sel
		return false
	})
	return found
}

func firstTimestamp(doc *goquery.Document) string {
	t := doc.Find("time").First()
	if t.Length() == 0 {
		return ""
	}
	if datetime, ok := t.Attr("datetime"); ok && strings.TrimSpace(datetime) != "" {
		return strings.TrimSpace(datetime)
	}
	return collapseSpace(t.Text())
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
