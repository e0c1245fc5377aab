// Package extract orchestrates the page to feed pipeline. It fetches and
// parses pages, then locates content containers and feed items using
// either the container scorer or a configured analysis strategy.
package extract

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/pagefeed"
)

// Ensure Analyzer implements pagefeed.Analyzer at compile time.
var _ pagefeed.Analyzer = (*Analyzer)(nil)

// Analyzer locates the primary content container of a page.
// With a nil Strategy the container scorer decides on its own.
type Analyzer struct {
	Fetcher  pagefeed.Fetcher
	Parser   pagefeed.DocumentParser
	Strategy pagefeed.AnalysisStrategy
	Now      func() time.Time
	Logger   *slog.Logger
}

// Analyze fetches the page at url and describes its best container.
func (a *Analyzer) Analyze(ctx context.Context, url string) (*pagefeed.Analysis, error) {
	if strings.TrimSpace(url) == "" {
		return nil, pagefeed.Errorf(pagefeed.EINVALID, "URL parameter is required")
	}

	html, err := a.Fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := a.Parser.Parse(html)
	if err != nil {
		return nil, err
	}

	var (
		container pagefeed.ContainerDescriptor
		method    = pagefeed.AnalysisHeuristic
	)
	if a.Strategy == nil {
		container, err = a.score(doc)
	} else {
		method = a.Strategy.Method()
		container, err = a.suggest(ctx, doc)
	}
	if err != nil {
		return nil, err
	}

	return &pagefeed.Analysis{
		URL:              url,
		PrimaryContainer: container,
		AnalyzedAt:       a.now(),
		AnalysisMethod:   method,
	}, nil
}

func (a *Analyzer) score(doc pagefeed.Document) (pagefeed.ContainerDescriptor, error) {
	best, score, err := pagefeed.SelectBest(doc)
	if err != nil {
		return pagefeed.ContainerDescriptor{}, err
	}
	return pagefeed.NewContainerDescriptor(best, pagefeed.GenerateSelector(best), score, ""), nil
}

// suggest asks the strategy for a selector and resolves it against the
// document. An unavailable strategy degrades to the fallback suggestion;
// the suggested selector must still match an element.
func (a *Analyzer) suggest(ctx context.Context, doc pagefeed.Document) (pagefeed.ContainerDescriptor, error) {
	suggestion, err := a.Strategy.AnalyzeContainers(ctx, pagefeed.SummarizeContainers(doc))
	if err != nil {
		if pagefeed.ErrorCode(err) != pagefeed.EUNAVAILABLE {
			return pagefeed.ContainerDescriptor{}, err
		}
		a.logger().Warn("container analysis unavailable, using fallback", "error", err)
		suggestion = pagefeed.FallbackContainer()
	}

	matches := doc.Find(suggestion.Selector)
	if len(matches) == 0 {
		return pagefeed.ContainerDescriptor{}, pagefeed.Errorf(pagefeed.ESELECTOR, "could not find element with selector: %s", suggestion.Selector)
	}

	return pagefeed.NewContainerDescriptor(matches[0], suggestion.Selector, suggestion.ConfidenceScore, suggestion.Reasoning), nil
}

func (a *Analyzer) now() time.Time {
	if a.Now == nil {
		return time.Now().UTC()
	}
	return a.Now()
}

func (a *Analyzer) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}
