package pagefeed

import (
	"math"
	"time"
)

// Defaults for Config.
const (
	DefaultFetchTimeout    = 10 * time.Second
	MaxFetchTimeout        = 30 * time.Second
	DefaultAnalysisTimeout = 30 * time.Second
	DefaultUserAgent       = "pagefeed/1.0 (+https://github.com/fwojciec/pagefeed)"
	DefaultMaxTokens       = 500
	MaxTokensLimit         = math.MaxInt32
	DefaultTemperature     = 0.1
)

// Metadata extractor names accepted by Config.
const (
	MetadataNone        = ""
	MetadataReadability = "readability"
	MetadataTrafilatura = "trafilatura"
)

// Config holds everything needed to build the extraction pipeline.
// It is validated once at startup and passed into constructors.
type Config struct {
	FetchTimeout time.Duration `json:"fetchTimeout"`
	MaxBodySize  int64         `json:"maxBodySize"`
	UserAgent    string        `json:"userAgent"`

	Strategy         string        `json:"strategy"`
	OpenRouterAPIKey string        `json:"-"`
	GeminiAPIKey     string        `json:"-"`
	Model            string        `json:"model"`
	AnalysisTimeout  time.Duration `json:"analysisTimeout"`
	MaxTokens        int           `json:"maxTokens"`
	Temperature      float64       `json:"temperature"`

	Metadata string `json:"metadata"`
}

// DefaultConfig returns a Config using the heuristic strategy.
func DefaultConfig() Config {
	return Config{
		FetchTimeout:    DefaultFetchTimeout,
		MaxBodySize:     DefaultMaxBodySize,
		UserAgent:       DefaultUserAgent,
		Strategy:        StrategyHeuristic,
		AnalysisTimeout: DefaultAnalysisTimeout,
		MaxTokens:       DefaultMaxTokens,
		Temperature:     DefaultTemperature,
	}
}

// External reports whether the configured strategy calls an external service.
func (c *Config) External() bool {
	return c.Strategy == StrategyOpenRouter || c.Strategy == StrategyGemini
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.FetchTimeout <= 0 || c.FetchTimeout > MaxFetchTimeout {
		return Errorf(EINVALID, "fetch timeout must be between 0 and %s", MaxFetchTimeout)
	}
	if c.MaxBodySize <= 0 {
		return Errorf(EINVALID, "max body size must be positive")
	}
	if c.UserAgent == "" {
		return Errorf(EINVALID, "user agent required")
	}

	switch c.Strategy {
	case StrategyHeuristic:
	case StrategyOpenRouter:
		if c.OpenRouterAPIKey == "" {
			return Errorf(EINVALID, "OpenRouter API key required for strategy %q", c.Strategy)
		}
	case StrategyGemini:
		if c.GeminiAPIKey == "" {
			return Errorf(EINVALID, "Gemini API key required for strategy %q", c.Strategy)
		}
	default:
		return Errorf(EINVALID, "unknown strategy %q", c.Strategy)
	}

	if c.External() {
		if c.AnalysisTimeout <= 0 {
			return Errorf(EINVALID, "analysis timeout must be positive")
		}
		if c.MaxTokens <= 0 || c.MaxTokens > MaxTokensLimit {
			return Errorf(EINVALID, "max tokens must be between 1 and %d", MaxTokensLimit)
		}
	}

	switch c.Metadata {
	case MetadataNone, MetadataReadability, MetadataTrafilatura:
	default:
		return Errorf(EINVALID, "unknown metadata extractor %q", c.Metadata)
	}

	return nil
}
