package extract

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/pagefeed"
)

// Ensure ItemExtractor implements pagefeed.ItemGenerator at compile time.
var _ pagefeed.ItemGenerator = (*ItemExtractor)(nil)

// ItemExtractor turns the repeating containers of a page into feed items.
//
// Only a blank url is reported to the caller. Fetch, parse and strategy
// failures are logged and produce an empty result so a feed endpoint
// always has something to render.
type ItemExtractor struct {
	Fetcher    pagefeed.Fetcher
	Parser     pagefeed.DocumentParser
	Strategy   pagefeed.AnalysisStrategy
	TimeParser pagefeed.TimeParser

	// Metadata, when set, fills in a missing feed title or description
	// from the page's own metadata.
	Metadata pagefeed.MetadataExtractor

	Logger *slog.Logger
}

// GenerateItems fetches the page at url and extracts feed items from the
// containers matching selector.
func (e *ItemExtractor) GenerateItems(ctx context.Context, url, selector string) (*pagefeed.FeedResult, error) {
	if strings.TrimSpace(url) == "" {
		return nil, pagefeed.Errorf(pagefeed.EINVALID, "url parameter is required")
	}

	logger := e.logger().With("url", url)

	html, err := e.Fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("item extraction failed", "stage", "fetch", "error", err)
		return pagefeed.EmptyFeedResult(), nil
	}

	doc, err := e.Parser.Parse(html)
	if err != nil {
		logger.Warn("item extraction failed", "stage", "parse", "error", err)
		return pagefeed.EmptyFeedResult(), nil
	}

	raw, err := e.Strategy.ExtractFeedItems(ctx, pagefeed.SummarizeItems(doc, selector), url)
	if err != nil {
		logger.Warn("item extraction failed", "stage", "extract", "error", err)
		return pagefeed.EmptyFeedResult(), nil
	}

	result := e.normalize(raw, url)
	if e.Metadata != nil && (result.FeedTitle == "" || result.FeedDescription == "") {
		e.enrich(result, html, logger)
	}
	return result, nil
}

// normalize converts raw strategy output into feed items. Nil entries are
// dropped, links are made absolute against pageURL and timestamps that do
// not parse are left absent.
func (e *ItemExtractor) normalize(raw *pagefeed.RawFeed, pageURL string) *pagefeed.FeedResult {
	if raw == nil {
		return pagefeed.EmptyFeedResult()
	}

	result := &pagefeed.FeedResult{
		FeedTitle:       raw.FeedTitle,
		FeedDescription: raw.FeedDescription,
		Items:           make([]pagefeed.FeedItem, 0, len(raw.Items)),
	}

	for _, item := range raw.Items {
		if item == nil {
			continue
		}
		feedItem := pagefeed.FeedItem{
			Title: item.Title,
			Link:  pagefeed.ResolveLink(item.Link, pageURL),
		}
		if item.PublishedAt != "" && e.TimeParser != nil {
			if t, err := e.TimeParser.Parse(item.PublishedAt); err == nil {
				feedItem.PublishedAt = t
			}
		}
		result.Items = append(result.Items, feedItem)
	}

	return result
}

func (e *ItemExtractor) enrich(result *pagefeed.FeedResult, html string, logger *slog.Logger) {
	meta, err := e.Metadata.ExtractMetadata(html)
	if err != nil {
		logger.Debug("metadata extraction failed", "error", err)
		return
	}
	if result.FeedTitle == "" {
		result.FeedTitle = strings.TrimSpace(meta.Title)
	}
	if result.FeedDescription == "" {
		result.FeedDescription = strings.TrimSpace(meta.Description)
	}
}

func (e *ItemExtractor) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
