// Package resty provides an HTTP-based implementation of staylens.Fetcher
// built on resty. It is the canonical fetcher: the listings site serves its
// embedded payload in the initial HTML, so no JavaScript execution is needed.
package resty

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/jbialy/staylens"
)

// DefaultTimeout is the hard wall-clock budget for one fetch.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies the client to the listings site.
const DefaultUserAgent = "StayLens/1.0 (Autonomous; +https://github.com/jbialy/staylens)"

// Ensure Fetcher implements staylens.Fetcher at compile time.
var _ staylens.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves listing pages over plain HTTP with a fixed header set.
// The headers matter: without an English-preferring Accept-Language the
// upstream localizes field content and the downstream schemas stop matching.
type Fetcher struct {
	client    *resty.Client
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = resty.New().
		SetTimeout(f.timeout).
		SetHeaders(map[string]string{
			"User-Agent":      f.userAgent,
			"Accept-Language": "en-US,en;q=0.9",
			"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
			"Cache-Control":   "no-cache",
		})

	return f
}

// Fetch retrieves the page at url. A non-2xx response fails with EUPSTREAM
// carrying the status; exceeding the timeout fails with ETIMEOUT. No
// retries, callers decide.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return "", staylens.Errorf(staylens.ETIMEOUT, "request to %s timed out after %s", url, f.timeout)
		}
		return "", err
	}

	if !resp.IsSuccess() {
		return "", staylens.Errorf(staylens.EUPSTREAM, "HTTP %d: %s for %s",
			resp.StatusCode(), http.StatusText(resp.StatusCode()), url)
	}

	return string(resp.Body()), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since the
// underlying client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
