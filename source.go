package gostcat

import "context"

// Source fetches candidate standards from one external origin. Each
// implementation encapsulates the extraction strategy for its origin and
// holds no mutable state, so sources are safe to fetch concurrently.
type Source interface {
	// Name returns the origin's stable identity (e.g. "gost.ru"),
	// unique within a registry.
	Name() string

	// BaseURL returns the origin's base address, used for reporting.
	BaseURL() string

	// Fetch retrieves candidate standards from the origin. On a fetch or
	// parse failure it returns the candidates successfully parsed so far
	// together with the error; callers keep the partial records and
	// contain the error rather than aborting the batch.
	Fetch(ctx context.Context) ([]Standard, error)
}

// SourceRegistry enumerates the registered sources. Registration order is
// fixed and doubles as the iteration order for fetch-all and the
// tie-break order for de-duplication.
type SourceRegistry interface {
	// All returns the sources in registration order.
	All() []Source

	// Find returns the source with the given name, matched
	// case-insensitively. Returns ENOTFOUND if no such source exists.
	Find(name string) (Source, error)

	// Names returns the identity strings of all sources in
	// registration order.
	Names() []string
}
