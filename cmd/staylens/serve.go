package main

import (
	"github.com/jbialy/staylens/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcp.NewServer(deps.Service, deps.Logger)
	return srv.Run(deps.Ctx, deps.Stdin, deps.Stdout)
}
