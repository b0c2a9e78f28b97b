package mock

import (
	"context"

	"github.com/fwojciec/fesoddoc"
)

var _ fesoddoc.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of fesoddoc.IndexService.
type IndexService struct {
	BuildIndexFn func(ctx context.Context) (*fesoddoc.Index, error)
	WriteIndexFn func(ctx context.Context, idx *fesoddoc.Index) (bool, error)
}

func (s *IndexService) BuildIndex(ctx context.Context) (*fesoddoc.Index, error) {
	return s.BuildIndexFn(ctx)
}

func (s *IndexService) WriteIndex(ctx context.Context, idx *fesoddoc.Index) (bool, error) {
	return s.WriteIndexFn(ctx, idx)
}

var _ fesoddoc.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of fesoddoc.MetadataExtractor.
type MetadataExtractor struct {
	ExtractFn func(markdown []byte) (*fesoddoc.DocMetadata, error)
}

func (e *MetadataExtractor) Extract(markdown []byte) (*fesoddoc.DocMetadata, error) {
	return e.ExtractFn(markdown)
}
