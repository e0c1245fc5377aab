// Package trafilatura reads page metadata using markusmobius/go-trafilatura.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/pagefeed"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements pagefeed.MetadataExtractor at compile time.
var _ pagefeed.MetadataExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to read a page's title and description.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMetadata returns the title and description trafilatura finds in
// rawHTML's meta tags, OpenGraph properties and JSON-LD.
func (e *Extractor) ExtractMetadata(rawHTML string) (*pagefeed.PageMetadata, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, pagefeed.Errorf(pagefeed.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &pagefeed.PageMetadata{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Description: strings.TrimSpace(result.Metadata.Description),
	}, nil
}
