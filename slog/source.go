// Package slog provides logging decorators for gostcat interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gostcat"
)

// Ensure LoggingSource implements gostcat.Source.
var _ gostcat.Source = (*LoggingSource)(nil)

// LoggingSource wraps a Source with fetch logging.
type LoggingSource struct {
	next   gostcat.Source
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next gostcat.Source, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Name delegates to the wrapped source.
func (s *LoggingSource) Name() string {
	return s.next.Name()
}

// BaseURL delegates to the wrapped source.
func (s *LoggingSource) BaseURL() string {
	return s.next.BaseURL()
}

// Fetch delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Fetch(ctx context.Context) (standards []gostcat.Standard, err error) {
	defer func(begin time.Time) {
		s.logger.Info("origin fetch",
			"source", s.next.Name(),
			"count", len(standards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Fetch(ctx)
}
