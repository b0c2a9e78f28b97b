package main

import (
	"github.com/fwojciec/fesoddoc/mcp"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	srv := mcp.New(deps.Catalog, deps.Documents,
		mcp.WithLogger(deps.Logger),
		mcp.WithVersion(version),
		mcp.WithLanguages(deps.Config.Languages),
	)
	return srv.Serve(deps.Ctx, mcp.Transport(c.Transport), c.Addr, deps.Stdin, deps.Stdout)
}
