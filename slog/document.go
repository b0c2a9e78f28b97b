package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/fesoddoc"
)

// Ensure LoggingDocumentService implements fesoddoc.DocumentService.
var _ fesoddoc.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with logging.
type LoggingDocumentService struct {
	next   fesoddoc.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next fesoddoc.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// FindDocument delegates to the wrapped service and logs the operation.
// Not-found results are expected and logged at info level; other failures
// at error level.
func (s *LoggingDocumentService) FindDocument(ctx context.Context, query, lang string) (doc *fesoddoc.Document, err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil && fesoddoc.ErrorCode(err) != fesoddoc.ENOTFOUND {
			level = slog.LevelError
		}
		attrs := []any{
			"query", query,
			"lang", lang,
			"duration", time.Since(begin),
			"err", err,
		}
		if doc != nil {
			attrs = append(attrs, "path", doc.Path, "bytes", len(doc.Content))
		}
		s.logger.Log(ctx, level, "document fetch", attrs...)
	}(time.Now())
	return s.next.FindDocument(ctx, query, lang)
}
