package pagefeed

import (
	"fmt"
	"io"
	"strings"
)

// Format is an output format for a generated feed.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatRSS  Format = "rss"
	FormatHTML Format = "html"
)

// ParseFormat validates a format literal. A blank value selects FormatJSON.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.TrimSpace(s)); f {
	case "":
		return FormatJSON, nil
	case FormatJSON, FormatRSS, FormatHTML:
		return f, nil
	}
	return "", Errorf(EINVALID, "Invalid format. Must be 'rss', 'json', or 'html'")
}

// ContentType returns the media type of payloads in this format.
func (f Format) ContentType() string {
	switch f {
	case FormatRSS:
		return "application/rss+xml; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// Extension returns the file extension of payloads in this format.
func (f Format) Extension() string {
	switch f {
	case FormatRSS:
		return ".xml"
	case FormatHTML:
		return ".html"
	default:
		return ".json"
	}
}

// Title returns the feed title to render, defaulting to the source URL.
func (r *FeedResult) Title(sourceURL string) string {
	if r != nil && r.FeedTitle != "" {
		return r.FeedTitle
	}
	return sourceURL
}

// Description returns the feed description to render, defaulting to a
// sentence naming the source URL.
func (r *FeedResult) Description(sourceURL string) string {
	if r != nil && r.FeedDescription != "" {
		return r.FeedDescription
	}
	return fmt.Sprintf("Feed generated from %s", sourceURL)
}

// Formatter renders a feed result generated from sourceURL.
type Formatter interface {
	Format(w io.Writer, format Format, sourceURL string, result *FeedResult) error
}
