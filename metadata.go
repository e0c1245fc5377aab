package pagefeed

// PageMetadata holds descriptive metadata of a page.
type PageMetadata struct {
	Title       string
	Description string
}

// MetadataExtractor reads page metadata (title tags, meta descriptions,
// JSON+LD, etc.) from raw HTML.
type MetadataExtractor interface {
	ExtractMetadata(html string) (*PageMetadata, error)
}
