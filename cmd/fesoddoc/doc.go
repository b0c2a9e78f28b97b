package main

import (
	"fmt"

	"github.com/fwojciec/fesoddoc"
)

// Run executes the doc command. It prints exactly what the get-api-doc
// tool would reply, then reports lookup failures through the exit status.
func (c *DocCmd) Run(deps *Dependencies) error {
	doc, err := deps.Documents.FindDocument(deps.Ctx, c.Name, c.Lang)
	fmt.Fprintln(deps.Stdout, fesoddoc.FormatDocument(c.Name, doc, err))
	return err
}
