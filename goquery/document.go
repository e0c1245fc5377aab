// Package goquery implements the pagefeed document model and the heuristic
// analysis strategy on top of PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagefeed"
)

var (
	_ pagefeed.DocumentParser = (*Parser)(nil)
	_ pagefeed.Document       = (*Document)(nil)
)

// Parser parses HTML into goquery-backed documents.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a Document from raw HTML.
func (p *Parser) Parse(html string) (pagefeed.Document, error) {
	return NewDocument(html)
}

// Document wraps a goquery document.
type Document struct {
	doc *goquery.Document
}

// NewDocument parses raw HTML into a Document.
func NewDocument(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, pagefeed.Errorf(pagefeed.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// Find returns the elements matching selector in document order.
// goquery treats an invalid selector as matching nothing.
func (d *Document) Find(selector string) []pagefeed.Element {
	var elements []pagefeed.Element
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		elements = append(elements, newElement(sel))
	})
	return elements
}

// newElement snapshots a single-node selection.
func newElement(sel *goquery.Selection) pagefeed.Element {
	id, _ := sel.Attr("id")
	class, _ := sel.Attr("class")
	raw, err := goquery.OuterHtml(sel)
	if err != nil {
		raw = ""
	}

	return pagefeed.Element{
		Tag:           goquery.NodeName(sel),
		ID:            strings.TrimSpace(id),
		Classes:       strings.Fields(class),
		Text:          sel.Text(),
		AncestorDepth: sel.Parents().Length(),
		RawHTML:       raw,
	}
}
