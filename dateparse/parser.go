// Package dateparse implements pagefeed.TimeParser using araddon/dateparse,
// which recognizes RFC3339, RFC1123, and most human-written date layouts.
package dateparse

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/pagefeed"
)

// Ensure Parser implements pagefeed.TimeParser at compile time.
var _ pagefeed.TimeParser = (*Parser)(nil)

// Parser parses free-form timestamps.
type Parser struct {
	loc *time.Location
}

// NewParser creates a Parser that reads timestamps without an explicit
// offset in loc. A nil loc means UTC.
func NewParser(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{loc: loc}
}

// Parse parses s into a time. Returns EPARSE for blank or unrecognized input.
func (p *Parser) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, pagefeed.Errorf(pagefeed.EPARSE, "empty timestamp")
	}

	t, err := dateparse.ParseIn(s, p.loc)
	if err != nil {
		return time.Time{}, pagefeed.Errorf(pagefeed.EPARSE, "unrecognized timestamp %q: %v", s, err)
	}
	return t, nil
}
