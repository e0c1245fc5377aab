package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagefeed"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Analyzer    pagefeed.Analyzer
	Items       pagefeed.ItemGenerator
	Formatter   pagefeed.Formatter
	Feeds       pagefeed.FeedService
	RateLimiter pagefeed.HostLimiter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Globals

	Analyze AnalyzeCmd `cmd:"" help:"Find the main content container of a page"`
	Items   ItemsCmd   `cmd:"" help:"Generate a feed from a page"`
	Serve   ServeCmd   `cmd:"" help:"Serve the feed API over HTTP"`
	Feed    FeedCmd    `cmd:"" help:"Manage stored feeds"`
	Render  RenderCmd  `cmd:"" help:"Render every stored feed to a directory"`
}

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool   `short:"v" help:"Enable debug logging"`
	DB      string `name:"db" env:"PAGEFEED_DB" default:"${db_path}" help:"SQLite database path"`

	FetchTimeout time.Duration `env:"PAGEFEED_FETCH_TIMEOUT" default:"10s" help:"Page fetch timeout (max 30s)"`
	MaxBodySize  int64         `env:"PAGEFEED_MAX_BODY_SIZE" default:"5242880" help:"Largest page body accepted, in bytes"`
	UserAgent    string        `env:"PAGEFEED_USER_AGENT" default:"${user_agent}" help:"User-Agent sent with page fetches"`

	Strategy         string        `env:"PAGEFEED_STRATEGY" default:"heuristic" enum:"heuristic,openrouter,gemini" help:"Analysis strategy (${enum})"`
	OpenRouterAPIKey string        `name:"openrouter-api-key" env:"OPENROUTER_API_KEY" help:"OpenRouter API key"`
	GeminiAPIKey     string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	Model            string        `env:"PAGEFEED_MODEL" help:"Model used by the external strategy"`
	AnalysisTimeout  time.Duration `env:"PAGEFEED_ANALYSIS_TIMEOUT" default:"30s" help:"External analysis timeout"`
	MaxTokens        int           `env:"PAGEFEED_MAX_TOKENS" default:"500" help:"Completion token limit"`
	Temperature      float64       `env:"PAGEFEED_TEMPERATURE" default:"0.1" help:"Sampling temperature"`
	Metadata         string        `env:"PAGEFEED_METADATA" help:"Fill missing feed title and description from page metadata (readability or trafilatura)"`
}

// Config converts the global flags into a pipeline configuration.
func (g *Globals) Config() pagefeed.Config {
	return pagefeed.Config{
		FetchTimeout:     g.FetchTimeout,
		MaxBodySize:      g.MaxBodySize,
		UserAgent:        g.UserAgent,
		Strategy:         g.Strategy,
		OpenRouterAPIKey: g.OpenRouterAPIKey,
		GeminiAPIKey:     g.GeminiAPIKey,
		Model:            g.Model,
		AnalysisTimeout:  g.AnalysisTimeout,
		MaxTokens:        g.MaxTokens,
		Temperature:      g.Temperature,
		Metadata:         g.Metadata,
	}
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ItemsCmd is the "items" subcommand.
type ItemsCmd struct {
	URL      string `arg:"" help:"Page URL"`
	Selector string `short:"s" help:"CSS selector matching item containers"`
	Format   string `short:"f" default:"json" help:"Output format (json, rss or html)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" env:"PAGEFEED_ADDR" default:":8080" help:"Listen address"`
}

// FeedCmd groups the stored feed subcommands.
type FeedCmd struct {
	Add    FeedAddCmd    `cmd:"" help:"Store a feed"`
	List   FeedListCmd   `cmd:"" help:"List stored feeds"`
	Delete FeedDeleteCmd `cmd:"" help:"Delete a stored feed"`
}

// FeedAddCmd is the "feed add" subcommand.
type FeedAddCmd struct {
	User      string   `arg:"" help:"Owner user ID"`
	URL       string   `arg:"" help:"Page URL"`
	Selectors []string `short:"s" name:"selector" help:"CSS selector matching item containers (repeatable)"`
}

// FeedListCmd is the "feed list" subcommand.
type FeedListCmd struct {
	User string `short:"u" help:"Only list feeds owned by this user"`
}

// FeedDeleteCmd is the "feed delete" subcommand.
type FeedDeleteCmd struct {
	ID string `arg:"" help:"Feed ID"`
}

// RenderCmd is the "render" subcommand.
type RenderCmd struct {
	Dir         string  `arg:"" type:"path" help:"Output directory"`
	Format      string  `short:"f" default:"rss" help:"Output format (json, rss or html)"`
	User        string  `short:"u" help:"Only render feeds owned by this user"`
	Concurrency int     `short:"c" default:"3" help:"Feeds rendered at once"`
	RPS         float64 `name:"rps" default:"1" help:"Requests per second to any single host"`
}
