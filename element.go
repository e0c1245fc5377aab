package pagefeed

import (
	"strings"
	"unicode/utf8"
)

// Element is a read-only snapshot of one node in a parsed page.
// Its identity is its position in the document, not a stable ID.
type Element struct {
	Tag           string
	ID            string
	Classes       []string
	Text          string
	AncestorDepth int
	RawHTML       string
}

// TrimmedTextLength returns the number of characters in the element's
// text after surrounding whitespace is removed.
func (e Element) TrimmedTextLength() int {
	return utf8.RuneCountInString(strings.TrimSpace(e.Text))
}

// ClassAttr returns the classes joined as they appear in a class attribute.
func (e Element) ClassAttr() string {
	return strings.Join(e.Classes, " ")
}

// GenerateSelector derives a minimal CSS selector for an element.
// An id wins over the first class, which wins over the bare tag name.
func GenerateSelector(e Element) string {
	if e.ID != "" {
		return "#" + e.ID
	}
	if len(e.Classes) > 0 {
		return "." + e.Classes[0]
	}
	return e.Tag
}

// Document is a parsed, navigable page.
type Document interface {
	// Find returns the elements matching a CSS selector in document order.
	// An invalid selector matches nothing.
	Find(selector string) []Element
}

// DocumentParser builds a Document from raw HTML.
type DocumentParser interface {
	Parse(html string) (Document, error)
}
