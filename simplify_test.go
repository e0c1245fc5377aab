package pagefeed_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeContainers(t *testing.T) {
	t.Parallel()

	var gotSelector string
	doc := &mock.Document{
		FindFn: func(selector string) []pagefeed.Element {
			gotSelector = selector
			return []pagefeed.Element{
				{Tag: "main", ID: "root", Classes: []string{"content", "wide"}, Text: "  hello  "},
				{Tag: "section"},
			}
		},
	}

	var got []pagefeed.ContainerSummary
	require.NoError(t, json.Unmarshal([]byte(pagefeed.SummarizeContainers(doc)), &got))

	assert.Equal(t, pagefeed.AnalysisSelector, gotSelector)
	assert.Equal(t, []pagefeed.ContainerSummary{
		{Tag: "main", ID: "root", Class: "content wide", TextLength: 5, Selector: "#root"},
		{Tag: "section", Selector: "section"},
	}, got)
}

func TestSummarizeContainers_Empty(t *testing.T) {
	t.Parallel()

	doc := &mock.Document{FindFn: func(string) []pagefeed.Element { return nil }}
	assert.Equal(t, "[]", pagefeed.SummarizeContainers(doc))
}

func TestSummarizeItems(t *testing.T) {
	t.Parallel()

	t.Run("blank selector uses defaults", func(t *testing.T) {
		t.Parallel()

		var got string
		doc := &mock.Document{
			FindFn: func(selector string) []pagefeed.Element {
				got = selector
				return nil
			},
		}
		pagefeed.SummarizeItems(doc, "  ")
		assert.Equal(t, pagefeed.DefaultItemSelector, got)
	})

	t.Run("caps and truncates", func(t *testing.T) {
		t.Parallel()

		elements := make([]pagefeed.Element, 25)
		for i := range elements {
			elements[i] = pagefeed.Element{
				RawHTML: fmt.Sprintf("<li>%d%s</li>", i, strings.Repeat("h", 2000)),
				Text:    strings.Repeat("t", 900),
			}
		}
		doc := &mock.Document{FindFn: func(string) []pagefeed.Element { return elements }}

		var got []pagefeed.ItemSummary
		require.NoError(t, json.Unmarshal([]byte(pagefeed.SummarizeItems(doc, "li")), &got))

		require.Len(t, got, pagefeed.MaxItemContainers)
		assert.True(t, strings.HasPrefix(got[19].HTML, "<li>19"))
		assert.Equal(t, pagefeed.MaxItemHTMLLength, utf8.RuneCountInString(got[0].HTML))
		assert.Equal(t, pagefeed.MaxItemTextLength, utf8.RuneCountInString(got[0].Text))
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "short", pagefeed.Truncate("short", 10))
	assert.Equal(t, "abcdefg...", pagefeed.Truncate("abcdefghijklmnop", 10))
	assert.Equal(t, "żółw ż...", pagefeed.Truncate("żółw żółw żółw", 9))
	assert.Equal(t, "ab", pagefeed.Truncate("abcdef", 2))
}
