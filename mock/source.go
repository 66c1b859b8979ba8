// Package mock provides function-field test doubles for gostcat interfaces.
package mock

import (
	"context"

	"github.com/fwojciec/gostcat"
)

var _ gostcat.Source = (*Source)(nil)

// Source is a mock implementation of gostcat.Source.
type Source struct {
	NameFn    func() string
	BaseURLFn func() string
	FetchFn   func(ctx context.Context) ([]gostcat.Standard, error)
}

func (s *Source) Name() string {
	return s.NameFn()
}

func (s *Source) BaseURL() string {
	return s.BaseURLFn()
}

func (s *Source) Fetch(ctx context.Context) ([]gostcat.Standard, error) {
	return s.FetchFn(ctx)
}

var _ gostcat.SourceRegistry = (*SourceRegistry)(nil)

// SourceRegistry is a mock implementation of gostcat.SourceRegistry.
type SourceRegistry struct {
	AllFn   func() []gostcat.Source
	FindFn  func(name string) (gostcat.Source, error)
	NamesFn func() []string
}

func (r *SourceRegistry) All() []gostcat.Source {
	return r.AllFn()
}

func (r *SourceRegistry) Find(name string) (gostcat.Source, error) {
	return r.FindFn(name)
}

func (r *SourceRegistry) Names() []string {
	return r.NamesFn()
}
