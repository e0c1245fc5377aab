package extract_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/dateparse"
	"github.com/fwojciec/pagefeed/extract"
	"github.com/fwojciec/pagefeed/goquery"
	pfhttp "github.com/fwojciec/pagefeed/http"
	"github.com/fwojciec/pagefeed/openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pageServer serves body as text/html for every path.
func pageServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPipeline_OversizedPage(t *testing.T) {
	t.Parallel()

	page := pageServer(t, `<html><body><article id="main-content">`+strings.Repeat("x", 4096)+`</article></body></html>`)
	fetcher := pfhttp.NewFetcher(pfhttp.WithMaxBodySize(1024))

	t.Run("analyze surfaces the size limit", func(t *testing.T) {
		t.Parallel()

		a := &extract.Analyzer{Fetcher: fetcher, Parser: goquery.NewParser()}
		_, err := a.Analyze(context.Background(), page.URL)

		require.Error(t, err)
		assert.Equal(t, pagefeed.EFETCH, pagefeed.ErrorCode(err))
	})

	t.Run("generate items degrades to an empty feed", func(t *testing.T) {
		t.Parallel()

		e := &extract.ItemExtractor{
			Fetcher:    fetcher,
			Parser:     goquery.NewParser(),
			Strategy:   goquery.NewHeuristicStrategy(),
			TimeParser: dateparse.NewParser(nil),
		}
		result, err := e.GenerateItems(context.Background(), page.URL, "")

		require.NoError(t, err)
		assert.Equal(t, pagefeed.EmptyFeedResult(), result)
	})
}

func TestPipeline_ExternalStrategyReturnsProse(t *testing.T) {
	t.Parallel()

	page := pageServer(t, `<html><body><main><article><a href="/a">A</a></article></main></body></html>`)
	completion := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Sorry, I can't read that page."}},
			},
		})
	}))
	t.Cleanup(completion.Close)

	strategy := openrouter.NewStrategy("key", openrouter.WithURL(completion.URL))

	t.Run("items fall back to an empty feed", func(t *testing.T) {
		t.Parallel()

		e := &extract.ItemExtractor{
			Fetcher:    pfhttp.NewFetcher(),
			Parser:     goquery.NewParser(),
			Strategy:   strategy,
			TimeParser: dateparse.NewParser(nil),
		}
		result, err := e.GenerateItems(context.Background(), page.URL, "")

		require.NoError(t, err)
		assert.Empty(t, result.Items)
		assert.Empty(t, result.FeedTitle)
	})

	t.Run("analysis falls back to main", func(t *testing.T) {
		t.Parallel()

		a := &extract.Analyzer{Fetcher: pfhttp.NewFetcher(), Parser: goquery.NewParser(), Strategy: strategy}
		analysis, err := a.Analyze(context.Background(), page.URL)

		require.NoError(t, err)
		assert.Equal(t, "main", analysis.PrimaryContainer.Selector)
		assert.Equal(t, "main", analysis.PrimaryContainer.TagName)
		assert.Equal(t, pagefeed.AnalysisExternal, analysis.AnalysisMethod)
	})
}
