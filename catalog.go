package fesoddoc

import (
	"context"
	"slices"
	"strings"
)

// CatalogEntry describes one documented API or feature.
type CatalogEntry struct {
	Name        string   `json:"name"`
	DirName     string   `json:"dirName"`
	Description string   `json:"description"`
	Module      string   `json:"module"`
	WhenToUse   string   `json:"whenToUse"`
	Keywords    []string `json:"keywords"`
}

// Validate returns an error if the entry contains invalid fields.
// Entries loaded from an existing index are served as-is; only the
// index builder validates.
func (e *CatalogEntry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "catalog entry name required")
	}
	if e.DirName == "" {
		return Errorf(EINVALID, "catalog entry %q dirName required", e.Name)
	}
	return nil
}

// Matches reports whether the entry matches a lowercased query by exact
// name, name substring, or keyword.
func (e *CatalogEntry) Matches(query string) bool {
	name := strings.ToLower(e.Name)
	return name == query ||
		strings.Contains(name, query) ||
		slices.Contains(e.Keywords, query)
}

// FindEntry returns the first entry in catalog order that matches query,
// or nil. Matching is case-insensitive. There is no ranking: a later exact
// match never beats an earlier substring or keyword match.
func FindEntry(entries []*CatalogEntry, query string) *CatalogEntry {
	q := strings.ToLower(query)
	for _, e := range entries {
		if e.Matches(q) {
			return e
		}
	}
	return nil
}

// CatalogService provides access to the API catalog.
type CatalogService interface {
	// FindCatalog returns all catalog entries in index order.
	// Returns EINTERNAL if the index cannot be read or parsed.
	FindCatalog(ctx context.Context) ([]*CatalogEntry, error)
}
