package mock

import (
	"context"

	"github.com/fwojciec/pagefeed"
)

var _ pagefeed.AnalysisStrategy = (*AnalysisStrategy)(nil)

// AnalysisStrategy is a mock implementation of pagefeed.AnalysisStrategy.
type AnalysisStrategy struct {
	AnalyzeContainersFn func(ctx context.Context, structure string) (*pagefeed.ContainerSuggestion, error)
	ExtractFeedItemsFn  func(ctx context.Context, structure, baseURL string) (*pagefeed.RawFeed, error)
	MethodFn            func() pagefeed.AnalysisMethod
}

func (s *AnalysisStrategy) AnalyzeContainers(ctx context.Context, structure string) (*pagefeed.ContainerSuggestion, error) {
	return s.AnalyzeContainersFn(ctx, structure)
}

func (s *AnalysisStrategy) ExtractFeedItems(ctx context.Context, structure, baseURL string) (*pagefeed.RawFeed, error) {
	return s.ExtractFeedItemsFn(ctx, structure, baseURL)
}

func (s *AnalysisStrategy) Method() pagefeed.AnalysisMethod {
	if s.MethodFn == nil {
		return pagefeed.AnalysisExternal
	}
	return s.MethodFn()
}
