package main

import (
	"fmt"

	"github.com/fwojciec/fesoddoc"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	idx, err := deps.Index.BuildIndex(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fesoddoc.ErrorMessage(err))
		return err
	}

	if c.DryRun {
		if _, err := deps.Stdout.Write(idx.Content); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stderr, "Built %d APIs (dry run, hash %s)\n", len(idx.Entries), idx.Hash)
		return nil
	}

	changed, err := deps.Index.WriteIndex(deps.Ctx, idx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", fesoddoc.ErrorMessage(err))
		return err
	}

	status := "unchanged"
	if changed {
		status = "updated"
	}
	fmt.Fprintf(deps.Stdout, "Indexed %d APIs (%s, hash %s)\n", len(idx.Entries), status, idx.Hash)
	return nil
}
