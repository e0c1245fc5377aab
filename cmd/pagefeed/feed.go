package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/pagefeed"
)

// Run executes the feed add command.
func (c *FeedAddCmd) Run(deps *Dependencies) error {
	feed := &pagefeed.Feed{
		UserID:    c.User,
		URL:       c.URL,
		Selectors: c.Selectors,
	}

	if err := deps.Feeds.CreateFeed(deps.Ctx, feed); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added feed %s for %s\n", feed.ID, feed.URL)
	return nil
}

// Run executes the feed list command.
func (c *FeedListCmd) Run(deps *Dependencies) error {
	var filter pagefeed.FeedFilter
	if c.User != "" {
		filter.UserID = &c.User
	}

	feeds, err := deps.Feeds.FindFeeds(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	if len(feeds) == 0 {
		fmt.Fprintln(deps.Stdout, "No feeds found. Use 'pagefeed feed add' to create one.")
		return nil
	}

	for _, f := range feeds {
		line := fmt.Sprintf("%s  %s  %s", f.ID, f.UserID, f.URL)
		if len(f.Selectors) > 0 {
			line += "  [" + strings.Join(f.Selectors, ", ") + "]"
		}
		fmt.Fprintln(deps.Stdout, line)
	}

	return nil
}

// Run executes the feed delete command.
func (c *FeedDeleteCmd) Run(deps *Dependencies) error {
	if err := deps.Feeds.DeleteFeed(deps.Ctx, c.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted feed %s\n", c.ID)
	return nil
}
