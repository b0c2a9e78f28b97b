// Package slog provides logging decorators for fesoddoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fesoddoc"
)

// Ensure LoggingCatalogService implements fesoddoc.CatalogService.
var _ fesoddoc.CatalogService = (*LoggingCatalogService)(nil)

// LoggingCatalogService wraps a CatalogService with logging.
type LoggingCatalogService struct {
	next   fesoddoc.CatalogService
	logger *slog.Logger
}

// NewLoggingCatalogService creates a new LoggingCatalogService.
func NewLoggingCatalogService(next fesoddoc.CatalogService, logger *slog.Logger) *LoggingCatalogService {
	return &LoggingCatalogService{next: next, logger: logger}
}

// FindCatalog delegates to the wrapped service and logs the operation.
// Failures are logged at error level.
func (s *LoggingCatalogService) FindCatalog(ctx context.Context) (entries []*fesoddoc.CatalogEntry, err error) {
	defer func(begin time.Time) {
		level := slog.LevelDebug
		if err != nil {
			level = slog.LevelError
		}
		s.logger.Log(ctx, level, "catalog load",
			"count", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindCatalog(ctx)
}
