// Package ratelimit provides per-domain rate limiting for outbound fetches.
// The pipeline hits a single uncontrolled upstream; pacing requests is what
// keeps the fixed User-Agent from getting blocked.
package ratelimit

import (
	"context"
	"net/url"
	"sync"

	"github.com/jbialy/staylens"
	"golang.org/x/time/rate"
)

// DomainLimiter provides per-domain rate limiting using token buckets.
// It creates a separate rate limiter for each domain, allowing concurrent
// requests to different domains while enforcing rate limits within each domain.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified requests per second limit.
// Each domain gets its own limiter with a burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the domain.
// Returns an error if the context is canceled before the wait completes.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// Ensure Fetcher implements staylens.Fetcher at compile time.
var _ staylens.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a staylens.Fetcher, waiting on a DomainLimiter before each
// request.
type Fetcher struct {
	next    staylens.Fetcher
	limiter *DomainLimiter
}

// NewFetcher creates a rate-limited Fetcher.
func NewFetcher(next staylens.Fetcher, limiter *DomainLimiter) *Fetcher {
	return &Fetcher{next: next, limiter: limiter}
}

// Fetch waits for the target domain's rate limit, then delegates.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", staylens.Errorf(staylens.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if err := f.limiter.Wait(ctx, u.Host); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
