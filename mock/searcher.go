package mock

import (
	"context"

	"github.com/fwojciec/gostcat"
)

var _ gostcat.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of gostcat.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]gostcat.Standard, error)
}

func (s *Searcher) Search(ctx context.Context, query string) ([]gostcat.Standard, error) {
	return s.SearchFn(ctx, query)
}

var _ gostcat.Collector = (*Collector)(nil)

// Collector is a mock implementation of gostcat.Collector.
type Collector struct {
	FetchAllFn func(ctx context.Context) ([]gostcat.Standard, error)
}

func (c *Collector) FetchAll(ctx context.Context) ([]gostcat.Standard, error) {
	return c.FetchAllFn(ctx)
}
