package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagefeed"
)

// Ensure LoggingStrategy implements pagefeed.AnalysisStrategy.
var _ pagefeed.AnalysisStrategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps an AnalysisStrategy with logging.
type LoggingStrategy struct {
	next   pagefeed.AnalysisStrategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next pagefeed.AnalysisStrategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// AnalyzeContainers delegates to the wrapped strategy and logs the suggestion.
func (s *LoggingStrategy) AnalyzeContainers(ctx context.Context, structure string) (suggestion *pagefeed.ContainerSuggestion, err error) {
	defer func(begin time.Time) {
		var selector string
		if suggestion != nil {
			selector = suggestion.Selector
		}
		s.logger.Info("container analysis",
			"method", s.next.Method(),
			"structure_bytes", len(structure),
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AnalyzeContainers(ctx, structure)
}

// ExtractFeedItems delegates to the wrapped strategy and logs the item count.
func (s *LoggingStrategy) ExtractFeedItems(ctx context.Context, structure, baseURL string) (feed *pagefeed.RawFeed, err error) {
	defer func(begin time.Time) {
		var count int
		if feed != nil {
			count = len(feed.Items)
		}
		s.logger.Info("item extraction",
			"method", s.next.Method(),
			"url", baseURL,
			"items", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractFeedItems(ctx, structure, baseURL)
}

// Method delegates to the wrapped strategy.
func (s *LoggingStrategy) Method() pagefeed.AnalysisMethod {
	return s.next.Method()
}
