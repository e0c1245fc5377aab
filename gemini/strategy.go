// Package gemini implements pagefeed.AnalysisStrategy using Google Gemini.
package gemini

import (
	"context"
	"math"

	"github.com/fwojciec/pagefeed"
	"google.golang.org/genai"
)

// DefaultModel is used when the configuration names no model.
const DefaultModel = "gemini-2.5-flash"

// Ensure Strategy implements pagefeed.AnalysisStrategy at compile time.
var _ pagefeed.AnalysisStrategy = (*Strategy)(nil)

// Strategy implements pagefeed.AnalysisStrategy using Google Gemini.
type Strategy struct {
	client      *genai.Client
	model       string
	maxTokens   int32
	temperature float32
}

// NewStrategy creates a new Strategy. An empty model selects DefaultModel.
// maxTokens is clamped to the int32 range the API accepts.
func NewStrategy(client *genai.Client, model string, maxTokens int, temperature float64) *Strategy {
	if model == "" {
		model = DefaultModel
	}
	return &Strategy{
		client:      client,
		model:       model,
		maxTokens:   int32(min(max(maxTokens, 0), math.MaxInt32)),
		temperature: float32(temperature),
	}
}

// Method reports that suggestions come from an external model.
func (s *Strategy) Method() pagefeed.AnalysisMethod {
	return pagefeed.AnalysisExternal
}

// AnalyzeContainers asks Gemini for the best content container.
func (s *Strategy) AnalyzeContainers(ctx context.Context, structure string) (*pagefeed.ContainerSuggestion, error) {
	content, err := s.generate(ctx, pagefeed.BuildContainerPrompt(structure))
	if err != nil {
		return nil, err
	}
	return pagefeed.DecodeContainerSuggestion(content)
}

// ExtractFeedItems asks Gemini for the feed items of a page.
func (s *Strategy) ExtractFeedItems(ctx context.Context, structure, baseURL string) (*pagefeed.RawFeed, error) {
	content, err := s.generate(ctx, pagefeed.BuildFeedPrompt(structure, baseURL))
	if err != nil {
		return nil, err
	}
	return pagefeed.DecodeRawFeed(content)
}

func (s *Strategy) generate(ctx context.Context, prompt string) (string, error) {
	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(s.maxTokens, s.temperature),
	)
	if err != nil {
		return "", pagefeed.Errorf(pagefeed.EUNAVAILABLE, "gemini request: %v", err)
	}
	if result == nil {
		return "", pagefeed.Errorf(pagefeed.EUNAVAILABLE, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", pagefeed.Errorf(pagefeed.EUNAVAILABLE, "gemini returned empty content")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// Responses are requested as JSON so they decode without surrounding prose.
func BuildConfig(maxTokens int32, temperature float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You analyze the HTML structure of web pages to build feeds. Reply with a single JSON object in the requested format.",
			}},
		},
		Temperature:      &temperature,
		MaxOutputTokens:  maxTokens,
		ResponseMIMEType: "application/json",
	}
}
