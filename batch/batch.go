// Package batch renders every stored feed to a writer, bounding
// concurrency and spacing out requests to the same host.
package batch

import (
	"bytes"
	"context"
	"net/url"

	"github.com/fwojciec/pagefeed"
	"golang.org/x/sync/errgroup"
)

// Defaults for Renderer.
const (
	DefaultConcurrency = 3
	DefaultRPS         = 1.0
)

// Renderer generates, formats and writes stored feeds.
type Renderer struct {
	Feeds       pagefeed.FeedService
	Items       pagefeed.ItemGenerator
	Formatter   pagefeed.Formatter
	Writer      pagefeed.FeedWriter
	RateLimiter pagefeed.HostLimiter
	Concurrency int
}

// Result holds the outcome of a batch render.
type Result struct {
	Written int
	Failed  int
	Items   int
	Bytes   int
}

// ProgressEvent reports progress during a batch render.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	FeedID    string
	URL       string
	Items     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting render progress.
type ProgressFunc func(event ProgressEvent)

type renderResult struct {
	feed  *pagefeed.Feed
	items int
	bytes int
	err   error
}

// RenderAll renders every feed matching filter in format. Per-feed
// failures are reported through progress and counted in the result;
// only failing to list feeds or a canceled context fails the call.
func (r *Renderer) RenderAll(ctx context.Context, filter pagefeed.FeedFilter, format pagefeed.Format, progress ProgressFunc) (*Result, error) {
	feeds, err := r.Feeds.FindFeeds(ctx, filter)
	if err != nil {
		return nil, err
	}

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(feeds)
	notify(progress, ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan renderResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, feed := range feeds {
			g.Go(func() error {
				resultCh <- r.render(gctx, feed, format)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	var (
		completed int
		result    Result
	)
	for res := range resultCh {
		completed++
		event := ProgressEvent{
			Completed: completed,
			Total:     total,
			FeedID:    res.feed.ID,
			URL:       res.feed.URL,
			Items:     res.items,
		}
		if res.err != nil {
			result.Failed++
			event.Type = ProgressFailed
			event.Error = res.err
		} else {
			result.Written++
			result.Items += res.items
			result.Bytes += res.bytes
			event.Type = ProgressCompleted
		}
		notify(progress, event)
	}

	if err := ctx.Err(); err != nil {
		return &result, err
	}

	notify(progress, ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	return &result, nil
}

// render generates and writes a single feed.
func (r *Renderer) render(ctx context.Context, feed *pagefeed.Feed, format pagefeed.Format) renderResult {
	res := renderResult{feed: feed}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, hostOf(feed.URL)); err != nil {
			res.err = err
			return res
		}
	}

	items, err := r.Items.GenerateItems(ctx, feed.URL, feed.Selector())
	if err != nil {
		res.err = err
		return res
	}
	res.items = len(items.Items)

	var buf bytes.Buffer
	if err := r.Formatter.Format(&buf, format, feed.URL, items); err != nil {
		res.err = err
		return res
	}

	if err := r.Writer.WriteFeed(ctx, feed, format, buf.Bytes()); err != nil {
		res.err = err
		return res
	}
	res.bytes = buf.Len()
	return res
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Hostname()
}

func notify(progress ProgressFunc, event ProgressEvent) {
	if progress != nil {
		progress(event)
	}
}
