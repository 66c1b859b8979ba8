package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gostcat"
)

// Ensure LoggingSearcher implements gostcat.Searcher.
var _ gostcat.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with query logging.
type LoggingSearcher struct {
	next   gostcat.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next gostcat.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the operation.
func (s *LoggingSearcher) Search(ctx context.Context, query string) (standards []gostcat.Standard, err error) {
	defer func(begin time.Time) {
		s.logger.Info("catalog search",
			"query", query,
			"count", len(standards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
