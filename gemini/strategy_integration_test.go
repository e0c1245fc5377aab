//go:build integration

package gemini_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/pagefeed/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestStrategy_Integration_AnalyzeContainers(t *testing.T) {
	t.Parallel()

	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		t.Skip("GEMINI_API_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	require.NoError(t, err)

	s := gemini.NewStrategy(client, "", 500, 0.1)

	suggestion, err := s.AnalyzeContainers(ctx, `[{"tag":"main","id":"content","text_length":1200,"selector":"#content"},{"tag":"section","class":"footer","text_length":80,"selector":".footer"}]`)

	require.NoError(t, err)
	assert.NotEmpty(t, suggestion.Selector)
}
