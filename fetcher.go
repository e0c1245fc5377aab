package pagefeed

import "context"

// DefaultMaxBodySize is the largest page body a Fetcher accepts (5 MB).
const DefaultMaxBodySize = 5 << 20

// Fetcher retrieves raw HTML for a URL.
type Fetcher interface {
	// Fetch returns the page body. Returns EFETCH on network failure,
	// timeout, a non-2xx status, or a body larger than the size ceiling.
	// The context controls cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}
