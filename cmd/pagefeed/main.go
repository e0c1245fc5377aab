package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/batch"
	"github.com/fwojciec/pagefeed/dateparse"
	"github.com/fwojciec/pagefeed/extract"
	"github.com/fwojciec/pagefeed/format"
	"github.com/fwojciec/pagefeed/gemini"
	"github.com/fwojciec/pagefeed/goquery"
	pfhttp "github.com/fwojciec/pagefeed/http"
	"github.com/fwojciec/pagefeed/openrouter"
	"github.com/fwojciec/pagefeed/readability"
	pfslog "github.com/fwojciec/pagefeed/slog"
	"github.com/fwojciec/pagefeed/sqlite"
	"github.com/fwojciec/pagefeed/trafilatura"
	"google.golang.org/genai"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path. Overridden by --db or PAGEFEED_DB.
	DBPath string

	// JSON files read for flag defaults. Missing files are ignored.
	ConfigPaths []string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:      defaultDBPath(),
		ConfigPaths: []string{"~/.pagefeed/config.json"},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagefeed"),
		kong.Description("Turn web pages into feeds"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(kong.JSON, m.ConfigPaths...),
		kong.Vars{
			"db_path":    m.DBPath,
			"user_agent": pagefeed.DefaultUserAgent,
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagefeed --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg := cli.Config()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", pagefeed.ErrorMessage(err))
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	command := kongCtx.Command()

	// Wire the page pipeline for commands that fetch pages.
	switch command {
	case "analyze <url>", "items <url>", "serve", "render <dir>":
		analyzer, items, err := NewPipeline(ctx, cfg, deps.Logger, cli.Verbose)
		if err != nil {
			return err
		}
		deps.Analyzer = analyzer
		deps.Items = items
		deps.Formatter = format.NewRenderer()
	}

	// Open the database for commands that use stored feeds.
	switch command {
	case "feed add <user> <url>", "feed list", "feed delete <id>", "render <dir>":
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGEFEED_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		deps.Feeds = sqlite.NewFeedService(m.DB)
		deps.RateLimiter = batch.NewHostLimiter(cli.Render.RPS)
	}

	return kongCtx.Run(deps)
}

// NewPipeline builds the analyzer and item extractor described by cfg.
// When debug is set, fetches and strategy calls are logged.
func NewPipeline(ctx context.Context, cfg pagefeed.Config, logger *slog.Logger, debug bool) (*extract.Analyzer, *extract.ItemExtractor, error) {
	var fetcher pagefeed.Fetcher = pfhttp.NewFetcherFromConfig(cfg)
	if debug {
		fetcher = pfslog.NewLoggingFetcher(fetcher, logger)
	}

	strategy, err := NewStrategy(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if debug {
		strategy = pfslog.NewLoggingStrategy(strategy, logger)
	}

	parser := goquery.NewParser()

	analyzer := &extract.Analyzer{
		Fetcher: fetcher,
		Parser:  parser,
		Logger:  logger,
	}
	// The container scorer reads the full document, so the heuristic
	// analyzer does not go through the summary-based strategy.
	if cfg.External() {
		analyzer.Strategy = strategy
	}

	items := &extract.ItemExtractor{
		Fetcher:    fetcher,
		Parser:     parser,
		Strategy:   strategy,
		TimeParser: dateparse.NewParser(nil),
		Metadata:   NewMetadataExtractor(cfg.Metadata),
		Logger:     logger,
	}

	return analyzer, items, nil
}

// NewStrategy returns the analysis strategy named by cfg.Strategy.
func NewStrategy(ctx context.Context, cfg pagefeed.Config) (pagefeed.AnalysisStrategy, error) {
	switch cfg.Strategy {
	case pagefeed.StrategyOpenRouter:
		return openrouter.NewStrategyFromConfig(cfg), nil
	case pagefeed.StrategyGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:     cfg.GeminiAPIKey,
			Backend:    genai.BackendGeminiAPI,
			HTTPClient: &http.Client{Timeout: cfg.AnalysisTimeout},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		return gemini.NewStrategy(client, cfg.Model, cfg.MaxTokens, cfg.Temperature), nil
	default:
		return goquery.NewHeuristicStrategy(), nil
	}
}

// NewMetadataExtractor returns the extractor named by name, or nil.
func NewMetadataExtractor(name string) pagefeed.MetadataExtractor {
	switch name {
	case pagefeed.MetadataReadability:
		return readability.NewExtractor()
	case pagefeed.MetadataTrafilatura:
		return trafilatura.NewExtractor()
	default:
		return nil
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagefeed.db"
	}
	dir := filepath.Join(home, ".pagefeed")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagefeed.db")
}
