package format

import (
	"encoding/json"
	"io"
	"time"

	"github.com/fwojciec/pagefeed"
)

type jsonDocument struct {
	Feed  jsonFeed   `json:"feed"`
	Items []jsonItem `json:"items"`
}

type jsonFeed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// jsonItem omits absent fields rather than emitting null.
type jsonItem struct {
	Title       string `json:"title,omitempty"`
	Link        string `json:"link,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

// WriteJSON writes result as a JSON document with a feed header and an
// items array. Timestamps use RFC 3339 and keep fractional seconds.
func WriteJSON(w io.Writer, sourceURL string, result *pagefeed.FeedResult) error {
	doc := jsonDocument{
		Feed: jsonFeed{
			Title:       result.Title(sourceURL),
			Description: result.Description(sourceURL),
			URL:         sourceURL,
		},
		Items: make([]jsonItem, 0, len(result.Items)),
	}
	for _, item := range result.Items {
		ji := jsonItem{Title: item.Title, Link: item.Link}
		if !item.PublishedAt.IsZero() {
			ji.PublishedAt = item.PublishedAt.Format(time.RFC3339Nano)
		}
		doc.Items = append(doc.Items, ji)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return pagefeed.Errorf(pagefeed.EINTERNAL, "encoding JSON feed: %v", err)
	}
	return nil
}
