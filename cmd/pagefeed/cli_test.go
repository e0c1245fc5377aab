package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagefeed"
	main "github.com/fwojciec/pagefeed/cmd/pagefeed"
	"github.com/fwojciec/pagefeed/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	return newTestMainAt(filepath.Join(t.TempDir(), "test.db"))
}

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"db_path": "test.db", "user_agent": "test"},
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"analyze", "items", "serve", "feed", "render"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestGlobals_Config(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli,
		kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}),
		kong.Exit(func(int) {}),
		kong.Vars{"db_path": "test.db", "user_agent": "test-agent"},
	)
	require.NoError(t, err)

	_, err = parser.Parse([]string{"--strategy", "openrouter", "--openrouter-api-key", "key", "--metadata", "readability", "items", "https://example.com"})
	require.NoError(t, err)

	cfg := cli.Config()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "openrouter", cfg.Strategy)
	assert.Equal(t, "key", cfg.OpenRouterAPIKey)
	assert.Equal(t, "test-agent", cfg.UserAgent)
	assert.Equal(t, "readability", cfg.Metadata)
	assert.Equal(t, 500, cfg.MaxTokens)
	assert.InDelta(t, 0.1, cfg.Temperature, 1e-9)
	assert.EqualValues(t, 5242880, cfg.MaxBodySize)
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help shows kong output", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)

		assert.Contains(t, stdout.String(), "Usage:")
		assert.Contains(t, stdout.String(), "Flags:")
		assert.Contains(t, stdout.String(), "render")
	})

	t.Run("no arguments is an error", func(t *testing.T) {
		t.Parallel()

		err := newTestMain(t).Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("external strategy without key fails validation", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		err := newTestMain(t).Run(context.Background(),
			[]string{"--strategy", "gemini", "--gemini-api-key", "", "items", "https://example.com"},
			&bytes.Buffer{}, stderr)
		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Gemini API key required")
	})

	t.Run("feed add, list and delete against sqlite", func(t *testing.T) {
		t.Parallel()

		m := newTestMain(t)
		ctx := context.Background()

		stdout := &bytes.Buffer{}
		err := m.Run(ctx, []string{"feed", "add", "user-1", "https://example.com/blog", "-s", "article.post"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Added feed")

		id := regexp.MustCompile(`Added feed (\S+)`).FindStringSubmatch(stdout.String())
		require.Len(t, id, 2)

		stdout.Reset()
		err = newTestMainAt(m.DBPath).Run(ctx, []string{"feed", "list", "-u", "user-1"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), id[1])
		assert.Contains(t, stdout.String(), "https://example.com/blog")
		assert.Contains(t, stdout.String(), "[article.post]")

		stdout.Reset()
		err = newTestMainAt(m.DBPath).Run(ctx, []string{"feed", "delete", id[1]}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Deleted feed")

		stdout.Reset()
		err = newTestMainAt(m.DBPath).Run(ctx, []string{"feed", "list"}, stdout, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No feeds found")
	})

	t.Run("serve stops when context is canceled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := newTestMain(t).Run(ctx, []string{"serve", "--addr", "127.0.0.1:0"}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)
	})
}

func newTestMainAt(dbPath string) *main.Main {
	m := main.NewMain()
	m.DBPath = dbPath
	m.ConfigPaths = nil
	return m
}

func TestNewPipeline_Heuristic(t *testing.T) {
	t.Parallel()

	analyzer, items, err := main.NewPipeline(context.Background(), pagefeed.DefaultConfig(), nil, false)
	require.NoError(t, err)

	assert.Nil(t, analyzer.Strategy, "heuristic analysis scores the full document")
	assert.IsType(t, &goquery.HeuristicStrategy{}, items.Strategy)
	assert.Nil(t, items.Metadata)
}
