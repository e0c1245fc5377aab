package format

import (
	"io"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagefeed"
)

// WriteRSS writes result as an RSS 2.0 document built at buildTime.
// Every item carries a title; link and pubDate appear only when present.
func WriteRSS(w io.Writer, sourceURL string, result *pagefeed.FeedResult, buildTime time.Time) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	rss := doc.CreateElement("rss")
	rss.CreateAttr("version", "2.0")

	channel := rss.CreateElement("channel")
	channel.CreateElement("title").SetText(result.Title(sourceURL))
	channel.CreateElement("description").SetText(result.Description(sourceURL))
	channel.CreateElement("link").SetText(sourceURL)
	channel.CreateElement("lastBuildDate").SetText(buildTime.Format(time.RFC1123Z))

	for _, item := range result.Items {
		el := channel.CreateElement("item")
		el.CreateElement("title").SetText(item.Title)
		if item.Link != "" {
			el.CreateElement("link").SetText(item.Link)
		}
		if !item.PublishedAt.IsZero() {
			el.CreateElement("pubDate").SetText(item.PublishedAt.Format(time.RFC1123Z))
		}
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return pagefeed.Errorf(pagefeed.EINTERNAL, "writing RSS feed: %v", err)
	}
	return nil
}
