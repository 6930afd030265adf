package mock

import "github.com/jbialy/staylens"

var _ staylens.PayloadLocator = (*PayloadLocator)(nil)

// PayloadLocator is a mock implementation of staylens.PayloadLocator.
type PayloadLocator struct {
	LocateFn func(html string) (staylens.Node, error)
}

func (l *PayloadLocator) Locate(html string) (staylens.Node, error) {
	return l.LocateFn(html)
}
