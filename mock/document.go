package mock

import (
	"context"

	"github.com/fwojciec/fesoddoc"
)

var _ fesoddoc.DocumentService = (*DocumentService)(nil)

// DocumentService is a mock implementation of fesoddoc.DocumentService.
type DocumentService struct {
	FindDocumentFn func(ctx context.Context, query, lang string) (*fesoddoc.Document, error)
}

func (s *DocumentService) FindDocument(ctx context.Context, query, lang string) (*fesoddoc.Document, error) {
	return s.FindDocumentFn(ctx, query, lang)
}
