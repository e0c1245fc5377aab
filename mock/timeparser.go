package mock

import (
	"time"

	"github.com/fwojciec/pagefeed"
)

var _ pagefeed.TimeParser = (*TimeParser)(nil)

// TimeParser is a mock implementation of pagefeed.TimeParser.
type TimeParser struct {
	ParseFn func(s string) (time.Time, error)
}

func (p *TimeParser) Parse(s string) (time.Time, error) {
	return p.ParseFn(s)
}
