package openrouter_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/openrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completionServer replies to every request with content as the first choice.
func completionServer(t *testing.T, content string, inspect func(r *http.Request, body map[string]any)) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if inspect != nil {
			inspect(r, body)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestStrategy_AnalyzeContainers(t *testing.T) {
	t.Parallel()

	t.Run("sends an authenticated completion request", func(t *testing.T) {
		t.Parallel()

		var (
			gotAuth string
			gotBody map[string]any
		)
		srv := completionServer(t, `{"selector":"#content","confidence_score":88,"reasoning":"most text"}`, func(r *http.Request, body map[string]any) {
			gotAuth = r.Header.Get("Authorization")
			gotBody = body
		})

		s := openrouter.NewStrategy("secret",
			openrouter.WithURL(srv.URL),
			openrouter.WithModel("test/model"),
			openrouter.WithMaxTokens(123),
			openrouter.WithTemperature(0.5),
		)

		suggestion, err := s.AnalyzeContainers(context.Background(), `[{"tag":"main"}]`)

		require.NoError(t, err)
		assert.Equal(t, &pagefeed.ContainerSuggestion{Selector: "#content", ConfidenceScore: 88, Reasoning: "most text"}, suggestion)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "test/model", gotBody["model"])
		assert.InDelta(t, 123.0, gotBody["max_tokens"], 0.001)
		assert.InDelta(t, 0.5, gotBody["temperature"], 0.001)

		messages, ok := gotBody["messages"].([]any)
		require.True(t, ok)
		require.Len(t, messages, 1)
		msg := messages[0].(map[string]any)
		assert.Equal(t, "user", msg["role"])
		assert.Contains(t, msg["content"], `[{"tag":"main"}]`)
	})

	t.Run("extracts JSON wrapped in prose", func(t *testing.T) {
		t.Parallel()

		srv := completionServer(t, "Sure! Here you go:\n```json\n{\"selector\": \".posts\", \"confidence_score\": 70}\n```\nHope it helps.", nil)
		s := openrouter.NewStrategy("k", openrouter.WithURL(srv.URL))

		suggestion, err := s.AnalyzeContainers(context.Background(), "[]")

		require.NoError(t, err)
		assert.Equal(t, ".posts", suggestion.Selector)
	})

	t.Run("reports unavailable when reply has no JSON", func(t *testing.T) {
		t.Parallel()

		srv := completionServer(t, "I cannot help with that.", nil)
		s := openrouter.NewStrategy("k", openrouter.WithURL(srv.URL))

		_, err := s.AnalyzeContainers(context.Background(), "[]")

		assert.Equal(t, pagefeed.EUNAVAILABLE, pagefeed.ErrorCode(err))
	})

	t.Run("reports unavailable on HTTP error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		t.Cleanup(srv.Close)
		s := openrouter.NewStrategy("k", openrouter.WithURL(srv.URL))

		_, err := s.AnalyzeContainers(context.Background(), "[]")

		require.Error(t, err)
		assert.Equal(t, pagefeed.EUNAVAILABLE, pagefeed.ErrorCode(err))
		assert.Contains(t, pagefeed.ErrorMessage(err), "429")
	})

	t.Run("reports unavailable on timeout", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		t.Cleanup(srv.Close)
		s := openrouter.NewStrategy("k", openrouter.WithURL(srv.URL), openrouter.WithTimeout(20*time.Millisecond))

		_, err := s.AnalyzeContainers(context.Background(), "[]")

		assert.Equal(t, pagefeed.EUNAVAILABLE, pagefeed.ErrorCode(err))
	})

	t.Run("reports unavailable on empty choices", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"choices":[]}`))
		}))
		t.Cleanup(srv.Close)
		s := openrouter.NewStrategy("k", openrouter.WithURL(srv.URL))

		_, err := s.AnalyzeContainers(context.Background(), "[]")

		assert.Equal(t, pagefeed.EUNAVAILABLE, pagefeed.ErrorCode(err))
	})
}

func TestStrategy_ExtractFeedItems(t *testing.T) {
	t.Parallel()

	t.Run("decodes feed items", func(t *testing.T) {
		t.Parallel()

		var prompt string
		srv := completionServer(t, `{"feed_title":"Blog","feed_description":"Posts","items":[{"title":"A","link":"/a","published_at":"2024-01-01"}]}`, func(_ *http.Request, body map[string]any) {
			prompt = body["messages"].([]any)[0].(map[string]any)["content"].(string)
		})
		s := openrouter.NewStrategy("k", openrouter.WithURL(srv.URL))

		feed, err := s.ExtractFeedItems(context.Background(), "[]", "https://example.com/blog")

		require.NoError(t, err)
		assert.Equal(t, "Blog", feed.FeedTitle)
		assert.Equal(t, "Posts", feed.FeedDescription)
		require.Len(t, feed.Items, 1)
		assert.Equal(t, &pagefeed.RawItem{Title: "A", Link: "/a", PublishedAt: "2024-01-01"}, feed.Items[0])
		assert.Contains(t, prompt, "https://example.com/blog")
	})

	t.Run("reports unavailable when items are missing", func(t *testing.T) {
		t.Parallel()

		srv := completionServer(t, `{"feed_title":"Blog"}`, nil)
		s := openrouter.NewStrategy("k", openrouter.WithURL(srv.URL))

		_, err := s.ExtractFeedItems(context.Background(), "[]", "https://example.com")

		assert.Equal(t, pagefeed.EUNAVAILABLE, pagefeed.ErrorCode(err))
	})
}

func TestNewStrategyFromConfig(t *testing.T) {
	t.Parallel()

	cfg := pagefeed.DefaultConfig()
	cfg.Strategy = pagefeed.StrategyOpenRouter
	cfg.OpenRouterAPIKey = "k"

	s := openrouter.NewStrategyFromConfig(cfg)

	assert.Equal(t, pagefeed.AnalysisExternal, s.Method())
	assert.Equal(t, "openrouter(anthropic/claude-3.5-sonnet)", s.String())
}
