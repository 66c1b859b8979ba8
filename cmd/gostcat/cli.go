package main

import (
	"context"
	"io"

	"github.com/fwojciec/gostcat"
	"github.com/fwojciec/gostcat/aggregate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Standards  gostcat.StandardService
	Sources    gostcat.SourceRegistry
	Aggregator *aggregate.Aggregator
	Searcher   gostcat.Searcher
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Search  SearchCmd  `cmd:"" help:"Search the standards catalog"`
	Refresh RefreshCmd `cmd:"" help:"Fetch standards from all sources and store new ones"`
	Sources SourcesCmd `cmd:"" help:"List the registered data sources"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Standard number or text to search for"`
}

// RefreshCmd is the "refresh" subcommand.
type RefreshCmd struct {
	Source string `short:"s" help:"Refresh from a single source (e.g. gost.ru)"`
}

// SourcesCmd is the "sources" subcommand.
type SourcesCmd struct{}
