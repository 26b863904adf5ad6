package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/kiosque/kiosque"
)

// Ensure LoggingDocumentService implements kiosque.DocumentService.
var _ kiosque.DocumentService = (*LoggingDocumentService)(nil)

// LoggingDocumentService wraps a DocumentService with logging.
type LoggingDocumentService struct {
	next   kiosque.DocumentService
	logger *slog.Logger
}

// NewLoggingDocumentService creates a new LoggingDocumentService.
func NewLoggingDocumentService(next kiosque.DocumentService, logger *slog.Logger) *LoggingDocumentService {
	return &LoggingDocumentService{next: next, logger: logger}
}

// RenderDocument delegates to the wrapped service and logs the operation.
func (s *LoggingDocumentService) RenderDocument(ctx context.Context, urlOrAlias string) (doc *kiosque.Document, err error) {
	defer func(begin time.Time) {
		bytes := 0
		if doc != nil {
			bytes = len(doc.Body)
		}
		s.logger.Info("render document",
			"input", urlOrAlias,
			"bytes", bytes,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.RenderDocument(ctx, urlOrAlias)
}
