// Package goquery provides a CSS-selector based implementation of
// staylens.PayloadLocator for finding the embedded client-state JSON in
// listing pages.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jbialy/staylens"
)

// DefaultSelectors is the prioritized list of script-element selectors tried
// in order. The first entry matches the current upstream deployment; the
// rest cover alternate deployments so a rollout on their side degrades to a
// fallback instead of an outage on ours.
var DefaultSelectors = []string{
	"script#data-deferred-state-0",
	"script#data-state",
	"script#__NEXT_DATA__",
	"script#initial-data",
	`script[type="application/json"]`,
}

// Ensure Locator implements staylens.PayloadLocator at compile time.
var _ staylens.PayloadLocator = (*Locator)(nil)

// Locator finds the page's embedded JSON payload by trying a prioritized
// list of CSS selectors and parsing the first match.
type Locator struct {
	selectors []string
}

// Option configures a Locator.
type Option func(*Locator)

// WithSelectors overrides the selector priority list.
func WithSelectors(selectors []string) Option {
	return func(l *Locator) {
		l.selectors = selectors
	}
}

// NewLocator creates a Locator using DefaultSelectors unless overridden.
func NewLocator(opts ...Option) *Locator {
	l := &Locator{selectors: DefaultSelectors}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Locate finds the data script element and parses its content as JSON.
func (l *Locator) Locate(html string) (staylens.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, staylens.Errorf(staylens.EPAYLOADMALFORMED, "failed to parse HTML: %v", err)
	}

	var sel *goquery.Selection
	for _, s := range l.selectors {
		if found := doc.Find(s).First(); found.Length() > 0 {
			sel = found
			break
		}
	}
	if sel == nil {
		return nil, staylens.Errorf(staylens.EPAYLOADNOTFOUND,
			"no data script element matched %v, page structure may have changed", l.selectors)
	}

	content := sel.Text()
	if strings.TrimSpace(content) == "" {
		return nil, staylens.Errorf(staylens.EPAYLOADEMPTY, "data script element is empty")
	}

	return staylens.ParseNode([]byte(content))
}
