package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"path"
	"strings"

	"github.com/fwojciec/fesoddoc"
	"golang.org/x/sync/singleflight"
)

// Ensure DocumentService implements fesoddoc.DocumentService at compile time.
var _ fesoddoc.DocumentService = (*DocumentService)(nil)

// DocumentService serves documents from DocsDir/<lang>/<dirName>.
//
// Successful reads are cached under fesoddoc.DocumentCacheKey. A query that
// matches no catalog entry is cached as a not-found result, since the
// catalog does not change for the life of the process. Missing files and
// read failures are not cached.
type DocumentService struct {
	// DefaultLanguage is used when FindDocument is called without a language.
	DefaultLanguage string

	fsys    iofs.FS
	catalog fesoddoc.CatalogService
	cache   fesoddoc.Cache
	group   singleflight.Group
}

// NewDocumentService creates a DocumentService reading from fsys.
func NewDocumentService(fsys iofs.FS, catalog fesoddoc.CatalogService, cache fesoddoc.Cache) *DocumentService {
	return &DocumentService{
		DefaultLanguage: fesoddoc.DefaultLanguage,
		fsys:            fsys,
		catalog:         catalog,
		cache:           cache,
	}
}

// FindDocument resolves query and returns its document in lang.
func (s *DocumentService) FindDocument(ctx context.Context, query, lang string) (*fesoddoc.Document, error) {
	if lang == "" {
		lang = s.DefaultLanguage
	}

	key := fesoddoc.DocumentCacheKey(lang, query)
	if v, ok := s.cache.Get(key); ok {
		return cachedDocument(v)
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.fetch(ctx, key, query, lang)
	})
	if err != nil {
		return nil, err
	}
	return v.(*fesoddoc.Document), nil
}

func (s *DocumentService) fetch(ctx context.Context, key, query, lang string) (*fesoddoc.Document, error) {
	entries, catalogErr := s.catalog.FindCatalog(ctx)

	entry := fesoddoc.FindEntry(entries, query)
	if entry == nil {
		err := fesoddoc.Errorf(fesoddoc.ENOTFOUND, "%q documentation does not exist", query)
		// Only a successfully loaded catalog makes the miss permanent.
		if catalogErr == nil {
			s.cache.Set(key, err)
		}
		return nil, err
	}

	dir := path.Join(fesoddoc.DocsDir, lang)
	name := path.Join(dir, entry.DirName)
	if !fesoddoc.ValidLanguage(lang) || !strings.HasPrefix(name, dir+"/") || !iofs.ValidPath(name) {
		return nil, fesoddoc.Errorf(fesoddoc.ENOTFOUND, "%s %s documentation does not exist", query, lang)
	}

	data, err := iofs.ReadFile(s.fsys, name)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil, fesoddoc.Errorf(fesoddoc.ENOTFOUND, "%s %s documentation does not exist", query, lang)
	} else if err != nil {
		return nil, fesoddoc.Errorf(fesoddoc.EINTERNAL, "failed to get %s %s documentation: %s", query, lang, err)
	}

	doc := &fesoddoc.Document{
		Query:   query,
		Lang:    lang,
		Entry:   entry,
		Path:    name,
		Content: string(data),
	}
	s.cache.Set(key, doc)
	return doc, nil
}

// cachedDocument unpacks a cached lookup result.
func cachedDocument(v any) (*fesoddoc.Document, error) {
	switch v := v.(type) {
	case *fesoddoc.Document:
		return v, nil
	case *fesoddoc.Error:
		return nil, v
	}
	return nil, fesoddoc.Errorf(fesoddoc.EINTERNAL, "unexpected cached value %T", v)
}
