package main

import (
	"fmt"

	pfgin "github.com/fwojciec/pagefeed/gin"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := pfgin.NewServer(c.Addr, deps.Analyzer, deps.Items, deps.Formatter, deps.Logger)
	fmt.Fprintf(deps.Stderr, "Listening on %s\n", c.Addr)
	return srv.Run(deps.Ctx)
}
