package pagefeed_test

import (
	"testing"

	"github.com/fwojciec/pagefeed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFeed_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, (&pagefeed.Feed{UserID: "u1", URL: "https://example.com"}).Validate())

	err := (&pagefeed.Feed{URL: "https://example.com"}).Validate()
	assert.Equal(t, pagefeed.EINVALID, pagefeed.ErrorCode(err))

	err = (&pagefeed.Feed{UserID: "u1", URL: "  "}).Validate()
	assert.Equal(t, pagefeed.EINVALID, pagefeed.ErrorCode(err))
}

func TestFeed_Selector(t *testing.T) {
	t.Parallel()

	assert.Empty(t, (&pagefeed.Feed{}).Selector())
	assert.Equal(t, "article, .post", (&pagefeed.Feed{Selectors: []string{" article ", "", ".post"}}).Selector())
}

func TestNewContainerDescriptor(t *testing.T) {
	t.Parallel()

	classes := []string{"content-area"}
	d := pagefeed.NewContainerDescriptor(
		pagefeed.Element{Tag: "article", ID: "main-content", Classes: classes},
		"#main-content", 42, "",
	)
	classes[0] = "changed"

	assert.Equal(t, pagefeed.ContainerDescriptor{
		Selector:        "#main-content",
		ConfidenceScore: 42,
		TagName:         "article",
		ClassNames:      []string{"content-area"},
		ID:              "main-content",
	}, d)
}

func TestFallbackContainer(t *testing.T) {
	t.Parallel()

	s := pagefeed.FallbackContainer()
	assert.Equal(t, "main", s.Selector)
	assert.InDelta(t, 50, s.ConfidenceScore, 1e-9)
}
