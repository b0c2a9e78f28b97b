// Package fs provides file-based implementations of fesoddoc services.
// Services read from an io/fs.FS rooted at the document root, so tests can
// substitute an in-memory tree.
package fs

import (
	"context"
	"encoding/json"
	iofs "io/fs"

	"github.com/fwojciec/fesoddoc"
	"golang.org/x/sync/singleflight"
)

// Ensure CatalogService implements fesoddoc.CatalogService at compile time.
var _ fesoddoc.CatalogService = (*CatalogService)(nil)

// CatalogService loads the catalog from fesoddoc.IndexFileName once and
// serves it from the cache afterwards.
type CatalogService struct {
	fsys  iofs.FS
	cache fesoddoc.Cache
	group singleflight.Group
}

// NewCatalogService creates a CatalogService reading from fsys.
func NewCatalogService(fsys iofs.FS, cache fesoddoc.Cache) *CatalogService {
	return &CatalogService{fsys: fsys, cache: cache}
}

// FindCatalog returns the cached catalog, loading it on first use.
// Failed loads are not cached, so a later call retries the read.
func (s *CatalogService) FindCatalog(ctx context.Context) ([]*fesoddoc.CatalogEntry, error) {
	if entries, ok := s.cached(); ok {
		return entries, nil
	}

	v, err, _ := s.group.Do(fesoddoc.CatalogCacheKey, func() (any, error) {
		if entries, ok := s.cached(); ok {
			return entries, nil
		}
		entries, err := s.load()
		if err != nil {
			return nil, err
		}
		s.cache.Set(fesoddoc.CatalogCacheKey, entries)
		return entries, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]*fesoddoc.CatalogEntry), nil
}

func (s *CatalogService) cached() ([]*fesoddoc.CatalogEntry, bool) {
	if !s.cache.Has(fesoddoc.CatalogCacheKey) {
		return nil, false
	}
	v, _ := s.cache.Get(fesoddoc.CatalogCacheKey)
	entries, ok := v.([]*fesoddoc.CatalogEntry)
	return entries, ok
}

func (s *CatalogService) load() ([]*fesoddoc.CatalogEntry, error) {
	data, err := iofs.ReadFile(s.fsys, fesoddoc.IndexFileName)
	if err != nil {
		return nil, fesoddoc.Errorf(fesoddoc.EINTERNAL, "failed to load api index: %s", err)
	}

	var entries []*fesoddoc.CatalogEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fesoddoc.Errorf(fesoddoc.EINTERNAL, "failed to parse api index: %s", err)
	}
	if entries == nil {
		entries = []*fesoddoc.CatalogEntry{}
	}
	return entries, nil
}
