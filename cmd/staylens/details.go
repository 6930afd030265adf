package main

import (
	"fmt"

	"github.com/jbialy/staylens/tools"
)

// Run executes the details command.
func (c *DetailsCmd) Run(deps *Dependencies) error {
	out := deps.Service.ListingDetails(deps.Ctx, tools.DetailsParams{
		ID:       c.ID,
		Checkin:  c.Checkin,
		Checkout: c.Checkout,
		Adults:   c.Adults,
		Children: c.Children,
	})
	fmt.Fprintln(deps.Stdout, out)
	return nil
}
