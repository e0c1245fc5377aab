package pagefeed

import (
	"context"
	"time"
)

// FeedItem is one normalized entry of a generated feed.
// Empty strings and a zero PublishedAt mean the value is absent.
// Link, when present, is always an absolute URL.
type FeedItem struct {
	Title       string
	Link        string
	PublishedAt time.Time
}

// FeedResult is the output of item generation. Items keep extraction order.
type FeedResult struct {
	FeedTitle       string
	FeedDescription string
	Items           []FeedItem
}

// EmptyFeedResult is the degraded-success result of item generation.
func EmptyFeedResult() *FeedResult {
	return &FeedResult{Items: []FeedItem{}}
}

// RawItem is an item as returned by an analysis strategy, before normalization.
type RawItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	PublishedAt string `json:"published_at"`
}

// RawFeed is a strategy's extraction result. Nil entries in Items are
// absent results and are dropped during normalization.
type RawFeed struct {
	FeedTitle       string     `json:"feed_title"`
	FeedDescription string     `json:"feed_description"`
	Items           []*RawItem `json:"items"`
}

// ItemGenerator extracts a normalized list of feed entries from a page.
type ItemGenerator interface {
	// GenerateItems fetches the page at url and extracts items from the
	// containers matching selector, or a default selector set when empty.
	// Only a blank url is reported as an error (EINVALID); every other
	// failure yields an empty result.
	GenerateItems(ctx context.Context, url, selector string) (*FeedResult, error)
}

// TimeParser parses free-form timestamps.
type TimeParser interface {
	// Parse returns EPARSE when s is not a recognizable timestamp.
	Parse(s string) (time.Time, error)
}
