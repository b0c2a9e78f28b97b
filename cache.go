package fesoddoc

// CatalogCacheKey is the cache key holding the loaded catalog.
const CatalogCacheKey = cacheKeyPrefix + "api_list"

const cacheKeyPrefix = "fesod_"

// DocumentCacheKey returns the cache key for a document lookup. The query
// is used verbatim, so "Fill" and "fill" are cached separately even though
// they resolve to the same entry.
func DocumentCacheKey(lang, query string) string {
	return lang + cacheKeyPrefix + query
}

// Cache is a process-lifetime key/value store shared by the catalog and
// document services. Entries are never evicted or expired. Stored values
// must not be mutated after Set.
type Cache interface {
	Has(key string) bool
	Get(key string) (any, bool)
	Set(key string, value any)
}
