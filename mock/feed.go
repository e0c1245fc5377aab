package mock

import (
	"context"

	"github.com/fwojciec/pagefeed"
)

var (
	_ pagefeed.FeedService = (*FeedService)(nil)
	_ pagefeed.FeedWriter  = (*FeedWriter)(nil)
	_ pagefeed.HostLimiter = (*HostLimiter)(nil)
)

// FeedService is a mock implementation of pagefeed.FeedService.
type FeedService struct {
	CreateFeedFn   func(ctx context.Context, feed *pagefeed.Feed) error
	FindFeedByIDFn func(ctx context.Context, id string) (*pagefeed.Feed, error)
	FindFeedsFn    func(ctx context.Context, filter pagefeed.FeedFilter) ([]*pagefeed.Feed, error)
	UpdateFeedFn   func(ctx context.Context, id string, upd pagefeed.FeedUpdate) (*pagefeed.Feed, error)
	DeleteFeedFn   func(ctx context.Context, id string) error
}

func (s *FeedService) CreateFeed(ctx context.Context, feed *pagefeed.Feed) error {
	return s.CreateFeedFn(ctx, feed)
}

func (s *FeedService) FindFeedByID(ctx context.Context, id string) (*pagefeed.Feed, error) {
	return s.FindFeedByIDFn(ctx, id)
}

func (s *FeedService) FindFeeds(ctx context.Context, filter pagefeed.FeedFilter) ([]*pagefeed.Feed, error) {
	return s.FindFeedsFn(ctx, filter)
}

func (s *FeedService) UpdateFeed(ctx context.Context, id string, upd pagefeed.FeedUpdate) (*pagefeed.Feed, error) {
	return s.UpdateFeedFn(ctx, id, upd)
}

func (s *FeedService) DeleteFeed(ctx context.Context, id string) error {
	return s.DeleteFeedFn(ctx, id)
}

// FeedWriter is a mock implementation of pagefeed.FeedWriter.
type FeedWriter struct {
	WriteFeedFn func(ctx context.Context, feed *pagefeed.Feed, format pagefeed.Format, payload []byte) error
}

func (w *FeedWriter) WriteFeed(ctx context.Context, feed *pagefeed.Feed, format pagefeed.Format, payload []byte) error {
	return w.WriteFeedFn(ctx, feed, format, payload)
}

// HostLimiter is a mock implementation of pagefeed.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
