package fesoddoc

import "context"

// Document is the resolved documentation for a query in one language.
type Document struct {
	Query   string        `json:"query"`
	Lang    string        `json:"lang"`
	Entry   *CatalogEntry `json:"entry"`
	Path    string        `json:"path"`
	Content string        `json:"content"`
}

// DocumentService resolves names to documentation.
type DocumentService interface {
	// FindDocument resolves query against the catalog and returns its
	// document in lang. An empty lang selects the default language.
	// Returns ENOTFOUND if the query does not resolve or the language has
	// no file for it, and EINTERNAL if the file cannot be read.
	FindDocument(ctx context.Context, query, lang string) (*Document, error)
}
