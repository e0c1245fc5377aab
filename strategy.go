package pagefeed

import "context"

// AnalysisStrategy picks containers and extracts items from a simplified
// page structure. Variants are chosen by configuration.
type AnalysisStrategy interface {
	// AnalyzeContainers suggests the best container from an analysis summary.
	// Returns EUNAVAILABLE when no usable suggestion could be produced.
	AnalyzeContainers(ctx context.Context, structure string) (*ContainerSuggestion, error)

	// ExtractFeedItems extracts raw feed items from an item summary of the
	// page at baseURL. Returns EUNAVAILABLE when no usable result could be produced.
	ExtractFeedItems(ctx context.Context, structure, baseURL string) (*RawFeed, error)

	// Method reports how suggestions from this strategy are produced.
	Method() AnalysisMethod
}

// Strategy names accepted by Config.
const (
	StrategyHeuristic  = "heuristic"
	StrategyOpenRouter = "openrouter"
	StrategyGemini     = "gemini"
)
