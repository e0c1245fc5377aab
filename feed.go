package pagefeed

import (
	"context"
	"strings"
	"time"
)

// Feed is a stored feed configuration: a page and the selectors that scope
// item extraction on it.
type Feed struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	URL       string    `json:"url"`
	Selectors []string  `json:"selectors"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Validate returns an error if the feed contains invalid fields.
func (f *Feed) Validate() error {
	if f.UserID == "" {
		return Errorf(EINVALID, "feed user ID required")
	}
	if strings.TrimSpace(f.URL) == "" {
		return Errorf(EINVALID, "feed URL required")
	}
	return nil
}

// Selector joins the feed's selectors into one selector group.
// Returns "" when the feed has none, selecting the default set.
func (f *Feed) Selector() string {
	var parts []string
	for _, s := range f.Selectors {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// FeedService represents a service for managing stored feeds.
type FeedService interface {
	// CreateFeed creates a new feed.
	CreateFeed(ctx context.Context, feed *Feed) error

	// FindFeedByID retrieves a feed by ID.
	// Returns ENOTFOUND if the feed does not exist.
	FindFeedByID(ctx context.Context, id string) (*Feed, error)

	// FindFeeds retrieves feeds matching the filter.
	FindFeeds(ctx context.Context, filter FeedFilter) ([]*Feed, error)

	// UpdateFeed updates an existing feed.
	// Returns ENOTFOUND if the feed does not exist.
	UpdateFeed(ctx context.Context, id string, upd FeedUpdate) (*Feed, error)

	// DeleteFeed permanently removes a feed.
	// Returns ENOTFOUND if the feed does not exist.
	DeleteFeed(ctx context.Context, id string) error
}

// FeedFilter represents a filter for FindFeeds.
type FeedFilter struct {
	ID     *string `json:"id"`
	UserID *string `json:"userId"`
	URL    *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// FeedUpdate represents fields that can be updated on a feed.
type FeedUpdate struct {
	URL       *string   `json:"url"`
	Selectors *[]string `json:"selectors"`
}

// FeedWriter persists a rendered feed payload.
type FeedWriter interface {
	WriteFeed(ctx context.Context, feed *Feed, format Format, payload []byte) error
}

// HostLimiter spaces out page fetches that hit the same host.
type HostLimiter interface {
	// Wait blocks until a fetch from host may start.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
