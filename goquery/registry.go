package goquery

import (
	"strings"

	"github.com/fwojciec/gostcat"
)

var _ gostcat.SourceRegistry = (*Registry)(nil)

// Registry holds sources in a fixed registration order. The order is the
// iteration order for fetch-all and the tie-break order when several
// origins report the same standard name.
type Registry struct {
	sources []gostcat.Source
	byName  map[string]gostcat.Source
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]gostcat.Source),
	}
}

// Register appends a source. Source names must be unique within the
// registry; registering a duplicate (compared case-insensitively)
// returns EINVALID.
func (r *Registry) Register(src gostcat.Source) error {
	key := strings.ToLower(src.Name())
	if _, ok := r.byName[key]; ok {
		return gostcat.Errorf(gostcat.EINVALID, "source %q already registered", src.Name())
	}
	r.sources = append(r.sources, src)
	r.byName[key] = src
	return nil
}

// All returns the sources in registration order.
func (r *Registry) All() []gostcat.Source {
	out := make([]gostcat.Source, len(r.sources))
	copy(out, r.sources)
	return out
}

// Find returns the source with the given name, matched case-insensitively.
func (r *Registry) Find(name string) (gostcat.Source, error) {
	src, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return nil, gostcat.Errorf(gostcat.ENOTFOUND, "source %q not found", name)
	}
	return src, nil
}

// Names returns the identity strings of all sources in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for _, src := range r.sources {
		names = append(names, src.Name())
	}
	return names
}
