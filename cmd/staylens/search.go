package main

import (
	"fmt"

	"github.com/jbialy/staylens/tools"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	out := deps.Service.Search(deps.Ctx, tools.SearchParams{
		Location: c.Location,
		Checkin:  c.Checkin,
		Checkout: c.Checkout,
		Adults:   c.Adults,
		Children: c.Children,
		Limit:    c.Limit,
	})
	fmt.Fprintln(deps.Stdout, out)
	return nil
}
