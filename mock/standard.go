package mock

import (
	"context"

	"github.com/fwojciec/gostcat"
)

var _ gostcat.StandardService = (*StandardService)(nil)

// StandardService is a mock implementation of gostcat.StandardService.
type StandardService struct {
	UpsertStandardsFn func(ctx context.Context, standards []gostcat.Standard) (int, error)
	SearchSubstringFn func(ctx context.Context, query string) ([]gostcat.Standard, error)
}

func (s *StandardService) UpsertStandards(ctx context.Context, standards []gostcat.Standard) (int, error) {
	return s.UpsertStandardsFn(ctx, standards)
}

func (s *StandardService) SearchSubstring(ctx context.Context, query string) ([]gostcat.Standard, error) {
	return s.SearchSubstringFn(ctx, query)
}
