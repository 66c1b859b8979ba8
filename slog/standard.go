package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/gostcat"
)

// Ensure LoggingStandardService implements gostcat.StandardService.
var _ gostcat.StandardService = (*LoggingStandardService)(nil)

// LoggingStandardService wraps a StandardService with operation logging.
type LoggingStandardService struct {
	next   gostcat.StandardService
	logger *slog.Logger
}

// NewLoggingStandardService creates a new LoggingStandardService.
func NewLoggingStandardService(next gostcat.StandardService, logger *slog.Logger) *LoggingStandardService {
	return &LoggingStandardService{next: next, logger: logger}
}

// UpsertStandards delegates to the wrapped service and logs the operation.
func (s *LoggingStandardService) UpsertStandards(ctx context.Context, standards []gostcat.Standard) (inserted int, err error) {
	defer func(begin time.Time) {
		s.logger.Info("standards upsert",
			"candidates", len(standards),
			"inserted", inserted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpsertStandards(ctx, standards)
}

// SearchSubstring delegates to the wrapped service and logs the operation.
func (s *LoggingStandardService) SearchSubstring(ctx context.Context, query string) (standards []gostcat.Standard, err error) {
	defer func(begin time.Time) {
		s.logger.Info("store search",
			"query", query,
			"count", len(standards),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchSubstring(ctx, query)
}
