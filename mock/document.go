package mock

import "github.com/fwojciec/pagefeed"

var (
	_ pagefeed.Document       = (*Document)(nil)
	_ pagefeed.DocumentParser = (*DocumentParser)(nil)
)

// Document is a mock implementation of pagefeed.Document.
type Document struct {
	FindFn func(selector string) []pagefeed.Element
}

func (d *Document) Find(selector string) []pagefeed.Element {
	return d.FindFn(selector)
}

// DocumentParser is a mock implementation of pagefeed.DocumentParser.
type DocumentParser struct {
	ParseFn func(html string) (pagefeed.Document, error)
}

func (p *DocumentParser) Parse(html string) (pagefeed.Document, error) {
	return p.ParseFn(html)
}
