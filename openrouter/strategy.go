// Package openrouter implements pagefeed.AnalysisStrategy against an
// OpenAI-compatible chat completion endpoint such as OpenRouter.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/pagefeed"
)

// Defaults for Strategy.
const (
	DefaultURL     = "https://openrouter.ai/api/v1/chat/completions"
	DefaultModel   = "anthropic/claude-3.5-sonnet"
	DefaultTimeout = 30 * time.Second
)

// maxResponseSize bounds the completion body read into memory.
const maxResponseSize = 1 << 20

// Ensure Strategy implements pagefeed.AnalysisStrategy at compile time.
var _ pagefeed.AnalysisStrategy = (*Strategy)(nil)

// Strategy asks a chat completion model to analyze page structure.
type Strategy struct {
	client      *http.Client
	url         string
	apiKey      string
	model       string
	maxTokens   int
	temperature float64
}

// Option configures a Strategy.
type Option func(*Strategy)

// WithURL sets the chat completion endpoint.
func WithURL(url string) Option {
	return func(s *Strategy) {
		s.url = url
	}
}

// WithModel sets the model name sent with each request.
func WithModel(model string) Option {
	return func(s *Strategy) {
		if model != "" {
			s.model = model
		}
	}
}

// WithTimeout sets the timeout of each completion request.
func WithTimeout(d time.Duration) Option {
	return func(s *Strategy) {
		s.client.Timeout = d
	}
}

// WithMaxTokens sets the completion token limit.
func WithMaxTokens(n int) Option {
	return func(s *Strategy) {
		s.maxTokens = n
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return func(s *Strategy) {
		s.temperature = t
	}
}

// NewStrategy creates a new Strategy authenticating with apiKey.
func NewStrategy(apiKey string, opts ...Option) *Strategy {
	s := &Strategy{
		client:      &http.Client{Timeout: DefaultTimeout},
		url:         DefaultURL,
		apiKey:      apiKey,
		model:       DefaultModel,
		maxTokens:   pagefeed.DefaultMaxTokens,
		temperature: pagefeed.DefaultTemperature,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStrategyFromConfig creates a Strategy from validated configuration.
func NewStrategyFromConfig(cfg pagefeed.Config) *Strategy {
	return NewStrategy(cfg.OpenRouterAPIKey,
		WithModel(cfg.Model),
		WithTimeout(cfg.AnalysisTimeout),
		WithMaxTokens(cfg.MaxTokens),
		WithTemperature(cfg.Temperature),
	)
}

// Method reports that suggestions come from an external model.
func (s *Strategy) Method() pagefeed.AnalysisMethod {
	return pagefeed.AnalysisExternal
}

// AnalyzeContainers asks the model for the best content container.
func (s *Strategy) AnalyzeContainers(ctx context.Context, structure string) (*pagefeed.ContainerSuggestion, error) {
	content, err := s.complete(ctx, pagefeed.BuildContainerPrompt(structure))
	if err != nil {
		return nil, err
	}
	return pagefeed.DecodeContainerSuggestion(content)
}

// ExtractFeedItems asks the model for the feed items of a page.
func (s *Strategy) ExtractFeedItems(ctx context.Context, structure, baseURL string) (*pagefeed.RawFeed, error) {
	content, err := s.complete(ctx, pagefeed.BuildFeedPrompt(structure, baseURL))
	if err != nil {
		return nil, err
	}
	return pagefeed.DecodeRawFeed(content)
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// complete sends prompt as a single user message and returns the content
// of the first choice. Every failure is reported as EUNAVAILABLE.
func (s *Strategy) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:       s.model,
		Messages:    []message{{Role: "user", Content: prompt}},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", unavailable("marshaling request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return "", unavailable("creating request", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", unavailable("completion request", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", unavailable("reading response", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", pagefeed.Errorf(pagefeed.EUNAVAILABLE, "completion API returned HTTP %d", resp.StatusCode)
	}

	var completion completionResponse
	if err := json.Unmarshal(raw, &completion); err != nil {
		return "", unavailable("parsing response", err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", pagefeed.Errorf(pagefeed.EUNAVAILABLE, "completion response has no content")
	}

	return completion.Choices[0].Message.Content, nil
}

func unavailable(op string, err error) error {
	return pagefeed.Errorf(pagefeed.EUNAVAILABLE, "%s: %v", op, err)
}

// String describes the strategy for logs.
func (s *Strategy) String() string {
	return fmt.Sprintf("openrouter(%s)", s.model)
}
