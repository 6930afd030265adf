package staylens

import "context"

// Fetcher retrieves listing pages from the upstream site.
// The canonical implementation is a plain HTTP client with a fixed header
// set; a browser-automation implementation exists for deployments where the
// embedded payload only appears after JavaScript runs.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases client resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
