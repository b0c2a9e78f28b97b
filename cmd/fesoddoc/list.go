package main

import (
	"fmt"

	"github.com/fwojciec/fesoddoc"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	entries, err := deps.Catalog.FindCatalog(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fesoddoc.ErrorMessage(err))
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, "No APIs found. Use 'fesoddoc index' to generate the index.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", e.Name, e.Module, e.DirName)
	}

	return nil
}
