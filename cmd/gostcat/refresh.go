package main

import (
	"fmt"

	"github.com/fwojciec/gostcat"
	"github.com/fwojciec/gostcat/aggregate"
)

// Run executes the refresh command.
func (c *RefreshCmd) Run(deps *Dependencies) error {
	var report *aggregate.Report
	var err error

	if c.Source != "" {
		src, findErr := deps.Sources.Find(c.Source)
		if findErr != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", gostcat.ErrorMessage(findErr))
			fmt.Fprintln(deps.Stderr, "Available sources:")
			for _, name := range deps.Sources.Names() {
				fmt.Fprintf(deps.Stderr, "  - %s\n", name)
			}
			return findErr
		}
		report, err = deps.Aggregator.RefreshSource(deps.Ctx, src)
	} else {
		report, err = deps.Aggregator.MergeAndPersist(deps.Ctx)
	}

	if report != nil {
		for _, origin := range report.Origins {
			status := fmt.Sprintf("ok, %d fetched", origin.Fetched)
			if origin.Err != nil {
				status = fmt.Sprintf("failed (%d fetched): %v", origin.Fetched, origin.Err)
			}
			fmt.Fprintf(deps.Stdout, "%-20s %s\n", origin.Name, status)
		}
		fmt.Fprintf(deps.Stdout, "Inserted %d new standards.\n", report.Inserted)
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", gostcat.ErrorMessage(err))
		return err
	}

	return nil
}
