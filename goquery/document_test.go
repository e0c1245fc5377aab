package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pagefeed"
	"github.com/fwojciec/pagefeed/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Find(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocument(`<html><body>
<div class="wrap  outer"><article id=" post-1 " class="entry">Hello <b>world</b></article></div>
<article>Second</article>
</body></html>`)
	require.NoError(t, err)

	t.Run("snapshots elements in document order", func(t *testing.T) {
		t.Parallel()

		elements := doc.Find("article")
		require.Len(t, elements, 2)

		first := elements[0]
		assert.Equal(t, "article", first.Tag)
		assert.Equal(t, "post-1", first.ID)
		assert.Equal(t, []string{"entry"}, first.Classes)
		assert.Equal(t, "Hello world", first.Text)
		assert.Equal(t, 3, first.AncestorDepth)
		assert.Equal(t, `<article id=" post-1 " class="entry">Hello <b>world</b></article>`, first.RawHTML)

		assert.Equal(t, "Second", elements[1].Text)
		assert.Equal(t, 2, elements[1].AncestorDepth)
	})

	t.Run("splits class attribute", func(t *testing.T) {
		t.Parallel()

		elements := doc.Find("div")
		require.Len(t, elements, 1)
		assert.Equal(t, []string{"wrap", "outer"}, elements[0].Classes)
	})

	t.Run("invalid selector matches nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, doc.Find("div[[["))
	})
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewParser().Parse("<p>hi</p>")
	require.NoError(t, err)
	assert.Len(t, doc.Find("p"), 1)
}

func TestSelectBest_RealDocument(t *testing.T) {
	t.Parallel()

	t.Run("single article", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<html><body><article id="main-content" class="content-area">` +
			strings.Repeat("Lorem ipsum ", 17) + `</article></body></html>`)
		require.NoError(t, err)

		best, _, err := pagefeed.SelectBest(doc)
		require.NoError(t, err)
		assert.Equal(t, "#main-content", pagefeed.GenerateSelector(best))
		assert.Equal(t, "article", best.Tag)
		assert.Equal(t, []string{"content-area"}, best.Classes)
	})

	t.Run("main beats sidebar", func(t *testing.T) {
		t.Parallel()

		text := strings.Repeat("word ", 30)
		doc, err := goquery.NewDocument(`<html><body>
<aside class="sidebar"><ul><li><a href="/x">` + text + `</a></li></ul></aside>
<main class="post-content"><p>` + text + `</p></main>
</body></html>`)
		require.NoError(t, err)

		best, _, err := pagefeed.SelectBest(doc)
		require.NoError(t, err)
		assert.Equal(t, "main", best.Tag)
	})

	t.Run("no qualifying container", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewDocument(`<html><body><div>too short</div><p>` + strings.Repeat("x", 100) + `</p></body></html>`)
		require.NoError(t, err)

		_, _, err = pagefeed.SelectBest(doc)
		assert.Equal(t, pagefeed.ENOCONTENT, pagefeed.ErrorCode(err))
	})
}

func TestSelectBest_RepeatedSelection(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("steady words ", 10)
	page := `<html><body>
<div class="left">` + text + `</div>
<div class="right">` + text + `</div>
<section>` + text + `</section>
<article>` + text + `</article>
</body></html>`

	parser := goquery.NewParser()
	first, err := parser.Parse(page)
	require.NoError(t, err)

	want, wantScore, err := pagefeed.SelectBest(first)
	require.NoError(t, err)
	require.Equal(t, "article", want.Tag)

	for range 5 {
		best, score, err := pagefeed.SelectBest(first)
		require.NoError(t, err)
		assert.Equal(t, pagefeed.GenerateSelector(want), pagefeed.GenerateSelector(best))
		assert.Equal(t, want.RawHTML, best.RawHTML)
		assert.InDelta(t, wantScore, score, 1e-9)
	}

	again, err := parser.Parse(page)
	require.NoError(t, err)
	best, score, err := pagefeed.SelectBest(again)
	require.NoError(t, err)
	assert.Equal(t, pagefeed.GenerateSelector(want), pagefeed.GenerateSelector(best))
	assert.InDelta(t, wantScore, score, 1e-9)
}

func TestSelectBest_EqualCandidatesKeepDocumentOrder(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("same length ", 10)
	doc, err := goquery.NewDocument(`<html><body>
<div id="one">` + text + `</div>
<div id="two">` + text + `</div>
</body></html>`)
	require.NoError(t, err)

	for range 3 {
		best, _, err := pagefeed.SelectBest(doc)
		require.NoError(t, err)
		assert.Equal(t, "one", best.ID)
	}
}
