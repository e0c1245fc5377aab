// Package http provides an HTTP-based implementation of pagefeed.Fetcher.
// Pages are fetched as-is; JavaScript is not executed.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/pagefeed"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements pagefeed.Fetcher at compile time.
var _ pagefeed.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP GET requests.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
	userAgent   string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout covering connect, headers and body.
// Defaults to pagefeed.DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize sets the largest body accepted, in bytes.
// Defaults to pagefeed.DefaultMaxBodySize (5 MB) if not specified.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithTransport sets the round tripper used by the underlying client.
func WithTransport(rt http.RoundTripper) Option {
	return func(f *Fetcher) {
		f.client.Transport = rt
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{},
		timeout:     pagefeed.DefaultFetchTimeout,
		maxBodySize: pagefeed.DefaultMaxBodySize,
		userAgent:   pagefeed.DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client.Timeout = f.timeout

	return f
}

// NewFetcherFromConfig creates a Fetcher from validated configuration.
func NewFetcherFromConfig(cfg pagefeed.Config) *Fetcher {
	return NewFetcher(
		WithTimeout(cfg.FetchTimeout),
		WithMaxBodySize(cfg.MaxBodySize),
		WithUserAgent(cfg.UserAgent),
	)
}

// Fetch retrieves the HTML content from the given URL. Buffering stops as
// soon as the body crosses the size ceiling.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pagefeed.Errorf(pagefeed.EFETCH, "invalid request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", pagefeed.Errorf(pagefeed.EFETCH, "failed to fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", pagefeed.Errorf(pagefeed.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	if resp.ContentLength > f.maxBodySize {
		return "", tooLarge(url, strconv.FormatInt(resp.ContentLength, 10))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", pagefeed.Errorf(pagefeed.EFETCH, "timeout reading %s", url)
		}
		return "", pagefeed.Errorf(pagefeed.EFETCH, "failed to read %s: %v", url, err)
	}
	if int64(len(body)) > f.maxBodySize {
		return "", tooLarge(url, "more than "+strconv.FormatInt(f.maxBodySize, 10))
	}

	return decode(body, resp.Header.Get("Content-Type")), nil
}

// decode converts body to UTF-8 using the Content-Type charset, a BOM or a
// <meta charset> declaration. Bodies that fail to decode are returned as-is.
func decode(body []byte, contentType string) string {
	enc, name, _ := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" {
		return string(body)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(decoded)
}

func tooLarge(url, size string) error {
	return pagefeed.Errorf(pagefeed.EFETCH, "content too large (%s bytes) for %s", size, url)
}
