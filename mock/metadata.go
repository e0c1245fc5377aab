package mock

import "github.com/fwojciec/pagefeed"

var _ pagefeed.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of pagefeed.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*pagefeed.PageMetadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*pagefeed.PageMetadata, error) {
	return e.ExtractMetadataFn(html)
}
