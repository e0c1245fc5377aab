package mock

import (
	"io"

	"github.com/fwojciec/pagefeed"
)

var _ pagefeed.Formatter = (*Formatter)(nil)

// Formatter is a mock implementation of pagefeed.Formatter.
type Formatter struct {
	FormatFn func(w io.Writer, format pagefeed.Format, sourceURL string, result *pagefeed.FeedResult) error
}

func (f *Formatter) Format(w io.Writer, format pagefeed.Format, sourceURL string, result *pagefeed.FeedResult) error {
	return f.FormatFn(w, format, sourceURL, result)
}
