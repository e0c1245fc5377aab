package main

import (
	"fmt"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/batch"
	"github.com/fwojciec/pagefeed/fs"
)

// Run executes the render command.
func (c *RenderCmd) Run(deps *Dependencies) error {
	format, err := pagefeed.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	var filter pagefeed.FeedFilter
	if c.User != "" {
		filter.UserID = &c.User
	}

	r := &batch.Renderer{
		Feeds:       deps.Feeds,
		Items:       deps.Items,
		Formatter:   deps.Formatter,
		Writer:      fs.NewWriter(c.Dir),
		RateLimiter: deps.RateLimiter,
		Concurrency: c.Concurrency,
	}

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Rendering %d feeds\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s (%d items)\n", event.Completed, event.Total, event.URL, event.Items)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] %s: %s\n", event.Completed, event.Total, event.URL, pagefeed.ErrorMessage(event.Error))
		}
	}

	result, err := r.RenderAll(deps.Ctx, filter, format, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Wrote %d feeds (%d failed, %d items, %d bytes) to %s\n",
		result.Written, result.Failed, result.Items, result.Bytes, c.Dir)
	return nil
}
