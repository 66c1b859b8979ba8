package gostcat

import "context"

// Searcher answers user queries against the catalog.
type Searcher interface {
	// Search returns standards matching the query. An empty or
	// whitespace-only query returns no results without consulting the
	// store or any source.
	Search(ctx context.Context, query string) ([]Standard, error)
}

// Collector produces the combined candidate records from every registered
// source. It is the live-fetch path used when the store has no matches.
type Collector interface {
	FetchAll(ctx context.Context) ([]Standard, error)
}

// DomainLimiter rate-limits outbound requests per domain.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	Wait(ctx context.Context, domain string) error
}
