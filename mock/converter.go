package mock

import "github.com/jbialy/staylens"

var _ staylens.Converter = (*Converter)(nil)

// Converter is a mock implementation of staylens.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
