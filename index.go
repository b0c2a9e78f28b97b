package fesoddoc

import "context"

// DocMetadata is the metadata extracted from one markdown document.
type DocMetadata struct {
	Title       string   `json:"title"`
	Keywords    []string `json:"keywords"`
	Description string   `json:"description"`
	WhenToUse   string   `json:"whenToUse"`
}

// MetadataExtractor extracts catalog metadata from markdown source.
type MetadataExtractor interface {
	Extract(markdown []byte) (*DocMetadata, error)
}

// Index is a generated catalog, encoded and ready to be written.
type Index struct {
	Entries []*CatalogEntry
	Content []byte
	Hash    string
}

// IndexService regenerates IndexFileName from the language trees.
type IndexService interface {
	// BuildIndex scans the primary language tree and returns the encoded
	// catalog without writing it.
	BuildIndex(ctx context.Context) (*Index, error)

	// WriteIndex atomically replaces the index file. It reports false
	// without touching the file when the content is unchanged.
	WriteIndex(ctx context.Context, idx *Index) (changed bool, err error)
}
