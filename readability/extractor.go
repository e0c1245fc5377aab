// Package readability reads page metadata using go-shiori/go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/pagefeed"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagefeed.MetadataExtractor at compile time.
var _ pagefeed.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to read a page's title and excerpt.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata returns the article title and excerpt of rawHTML.
// The excerpt comes from the meta description, or the first paragraph
// when the page has none.
func (e *Extractor) ExtractMetadata(rawHTML string) (*pagefeed.PageMetadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagefeed.Errorf(pagefeed.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &pagefeed.PageMetadata{
		Title:       strings.TrimSpace(article.Title),
		Description: strings.TrimSpace(article.Excerpt),
	}, nil
}
