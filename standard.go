package gostcat

import (
	"context"
	"strings"
)

// Standard represents one GOST technical-standard record. It is an
// immutable value: construct it with NewStandard and do not mutate it.
// Identity is the trimmed, case-sensitive Name; two records with the same
// Name are the same standard regardless of Description.
type Standard struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewStandard constructs a Standard, trimming surrounding whitespace on
// both fields. It returns EINVALID if the name is empty after trimming.
// A missing description becomes the empty string so display and
// concatenation logic never special-case absence.
func NewStandard(name, description string) (Standard, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Standard{}, Errorf(EINVALID, "standard name required")
	}
	return Standard{
		Name:        name,
		Description: strings.TrimSpace(description),
	}, nil
}

// Validate returns an error if the standard contains invalid fields.
func (s Standard) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return Errorf(EINVALID, "standard name required")
	}
	return nil
}

// StandardService persists unique standards and searches over them.
type StandardService interface {
	// UpsertStandards inserts each candidate whose name is not already
	// stored and returns how many were actually inserted. Skipping an
	// already-stored name is not an error. Returns EUNAVAILABLE if the
	// storage medium cannot be reached.
	UpsertStandards(ctx context.Context, standards []Standard) (int, error)

	// SearchSubstring returns every stored standard whose name or
	// description contains query as an exact substring. Records matching
	// on name come before records matching only on description. Returns
	// EUNAVAILABLE if the storage medium cannot be reached.
	SearchSubstring(ctx context.Context, query string) ([]Standard, error)
}
