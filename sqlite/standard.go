package sqlite

import (
	"context"

	"github.com/fwojciec/gostcat"
)

// Compile-time interface verification.
var _ gostcat.StandardService = (*StandardService)(nil)

// StandardService implements gostcat.StandardService using SQLite.
type StandardService struct {
	db *DB
}

// NewStandardService creates a new StandardService.
func NewStandardService(db *DB) *StandardService {
	return &StandardService{db: db}
}

// UpsertStandards inserts each standard whose name is not already stored
// and returns how many rows were actually inserted. Conflicts on name are
// skipped silently: the first stored description wins and is never
// overwritten on re-ingest.
func (s *StandardService) UpsertStandards(ctx context.Context, standards []gostcat.Standard) (int, error) {
	inserted := 0
	for _, std := range standards {
		if err := std.Validate(); err != nil {
			return inserted, err
		}

		res, err := s.db.ExecContext(ctx, `
			INSERT INTO standards (name, description)
			VALUES (?, ?)
			ON CONFLICT(name) DO NOTHING
		`, std.Name, std.Description)
		if err != nil {
			return inserted, gostcat.Errorf(gostcat.EUNAVAILABLE, "standard storage: %v", err)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return inserted, gostcat.Errorf(gostcat.EUNAVAILABLE, "standard storage: %v", err)
		}
		inserted += int(n)
	}

	return inserted, nil
}

// SearchSubstring returns stored standards containing query as an exact
// substring of name or description. instr() compares bytes, so the match
// is case-sensitive for ASCII and Cyrillic alike. Name matches are
// ordered before description-only matches; ties keep insertion order.
func (s *StandardService) SearchSubstring(ctx context.Context, query string) ([]gostcat.Standard, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, description
		FROM standards
		WHERE instr(name, ?1) > 0 OR instr(description, ?1) > 0
		ORDER BY CASE WHEN instr(name, ?1) > 0 THEN 0 ELSE 1 END, id
	`, query)
	if err != nil {
		return nil, gostcat.Errorf(gostcat.EUNAVAILABLE, "standard storage: %v", err)
	}
	defer rows.Close()

	var standards []gostcat.Standard
	for rows.Next() {
		var std gostcat.Standard
		if err := rows.Scan(&std.Name, &std.Description); err != nil {
			return nil, gostcat.Errorf(gostcat.EUNAVAILABLE, "standard storage: %v", err)
		}
		standards = append(standards, std)
	}
	if err := rows.Err(); err != nil {
		return nil, gostcat.Errorf(gostcat.EUNAVAILABLE, "standard storage: %v", err)
	}

	return standards, nil
}
