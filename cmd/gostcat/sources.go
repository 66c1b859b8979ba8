package main

import "fmt"

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	for _, src := range deps.Sources.All() {
		fmt.Fprintf(deps.Stdout, "%s  %s\n", src.Name(), src.BaseURL())
	}
	return nil
}
