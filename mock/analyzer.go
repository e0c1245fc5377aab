package mock

import (
	"context"

	"github.com/fwojciec/pagefeed"
)

var (
	_ pagefeed.Analyzer      = (*Analyzer)(nil)
	_ pagefeed.ItemGenerator = (*ItemGenerator)(nil)
)

// Analyzer is a mock implementation of pagefeed.Analyzer.
type Analyzer struct {
	AnalyzeFn func(ctx context.Context, url string) (*pagefeed.Analysis, error)
}

func (a *Analyzer) Analyze(ctx context.Context, url string) (*pagefeed.Analysis, error) {
	return a.AnalyzeFn(ctx, url)
}

// ItemGenerator is a mock implementation of pagefeed.ItemGenerator.
type ItemGenerator struct {
	GenerateItemsFn func(ctx context.Context, url, selector string) (*pagefeed.FeedResult, error)
}

func (g *ItemGenerator) GenerateItems(ctx context.Context, url, selector string) (*pagefeed.FeedResult, error) {
	return g.GenerateItemsFn(ctx, url, selector)
}
