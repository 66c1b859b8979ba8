// Package search implements the query path over the standards catalog:
// store first, live aggregate-and-filter fallback when the store has
// nothing cached yet.
package search

import (
	"context"
	"strings"

	"github.com/fwojciec/gostcat"
)

// Ensure Service implements gostcat.Searcher at compile time.
var _ gostcat.Searcher = (*Service)(nil)

// Service answers catalog queries.
type Service struct {
	Standards gostcat.StandardService
	Collector gostcat.Collector
}

// NewService creates a new Service.
func NewService(standards gostcat.StandardService, collector gostcat.Collector) *Service {
	return &Service{Standards: standards, Collector: collector}
}

// Search queries the store first and returns its matches when there are
// any. With zero store matches it falls back to a live fetch across all
// sources, filtered case-insensitively. The fallback never persists its
// findings. An empty or whitespace-only query returns no results
// immediately, without touching the store or any source.
func (s *Service) Search(ctx context.Context, query string) ([]gostcat.Standard, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	stored, err := s.Standards.SearchSubstring(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(stored) > 0 {
		return stored, nil
	}

	live, err := s.Collector.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	return filterFold(live, query), nil
}

// filterFold keeps standards whose name or description contains the query,
// compared case-insensitively.
func filterFold(standards []gostcat.Standard, query string) []gostcat.Standard {
	query = strings.ToLower(query)

	var matches []gostcat.Standard
	for _, std := range standards {
		if strings.Contains(strings.ToLower(std.Name), query) ||
			strings.Contains(strings.ToLower(std.Description), query) {
			matches = append(matches, std)
		}
	}
	return matches
}
