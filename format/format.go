// Package format renders feed results as JSON, RSS 2.0 or HTML.
package format

import (
	"io"
	"time"

	"github.com/fwojciec/pagefeed"
)

// Ensure Renderer implements pagefeed.Formatter at compile time.
var _ pagefeed.Formatter = (*Renderer)(nil)

// Renderer implements pagefeed.Formatter for every supported format.
type Renderer struct {
	// Now stamps the RSS lastBuildDate. Defaults to time.Now.
	Now func() time.Time
}

// NewRenderer creates a new Renderer.
func NewRenderer() *Renderer {
	return &Renderer{Now: time.Now}
}

// Format writes result to w in the requested format.
func (r *Renderer) Format(w io.Writer, format pagefeed.Format, sourceURL string, result *pagefeed.FeedResult) error {
	if result == nil {
		result = pagefeed.EmptyFeedResult()
	}

	switch format {
	case pagefeed.FormatJSON:
		return WriteJSON(w, sourceURL, result)
	case pagefeed.FormatRSS:
		return WriteRSS(w, sourceURL, result, r.now())
	case pagefeed.FormatHTML:
		return WriteHTML(w, sourceURL, result)
	}
	return pagefeed.Errorf(pagefeed.EINVALID, "Invalid format. Must be 'rss', 'json', or 'html'")
}

func (r *Renderer) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}
