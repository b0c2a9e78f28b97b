package mock

import (
	"context"

	"github.com/fwojciec/fesoddoc"
)

var _ fesoddoc.CatalogService = (*CatalogService)(nil)

// CatalogService is a mock implementation of fesoddoc.CatalogService.
type CatalogService struct {
	FindCatalogFn func(ctx context.Context) ([]*fesoddoc.CatalogEntry, error)
}

func (s *CatalogService) FindCatalog(ctx context.Context) ([]*fesoddoc.CatalogEntry, error) {
	return s.FindCatalogFn(ctx)
}
