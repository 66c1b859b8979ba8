package main

import (
	"fmt"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	results, err := deps.Searcher.Search(deps.Ctx, c.Query)
	if err != nil {
		// User-facing search degrades to "no results"; the failure
		// detail is already in the logs.
		fmt.Fprintln(deps.Stdout, "No results found.")
		return nil
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results found.")
		return nil
	}

	for _, std := range results {
		if std.Description != "" {
			fmt.Fprintf(deps.Stdout, "%s  %s\n", std.Name, std.Description)
		} else {
			fmt.Fprintln(deps.Stdout, std.Name)
		}
	}

	return nil
}
