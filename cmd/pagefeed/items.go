package main

import (
	"fmt"

	"github.com/fwojciec/pagefeed"
)

// Run executes the items command.
func (c *ItemsCmd) Run(deps *Dependencies) error {
	format, err := pagefeed.ParseFormat(c.Format)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	result, err := deps.Items.GenerateItems(deps.Ctx, c.URL, c.Selector)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	return deps.Formatter.Format(deps.Stdout, format, c.URL, result)
}
