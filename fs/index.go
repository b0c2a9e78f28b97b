package fs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/fesoddoc"
	"golang.org/x/sync/errgroup"
)

// Ensure IndexBuilder implements fesoddoc.IndexService at compile time.
var _ fesoddoc.IndexService = (*IndexBuilder)(nil)

// moduleLabels maps top-level doc directories to their catalog module label.
var moduleLabels = map[string]string{
	"fill":  "(填充 fill)",
	"write": "(写入 write)",
	"read":  "(读取 read)",
}

// IndexBuilder regenerates fesoddoc.IndexFileName from the markdown files
// under DocsDir. Entries follow the walk order of the primary language
// tree; a file with the same relative path in the secondary language
// contributes its title, description and keywords.
type IndexBuilder struct {
	Root      string
	Languages []string
	Extractor fesoddoc.MetadataExtractor

	// Concurrency limits parallel file reads. Defaults to 8.
	Concurrency int
}

// NewIndexBuilder creates an IndexBuilder for the given config.
func NewIndexBuilder(cfg fesoddoc.Config, extractor fesoddoc.MetadataExtractor) *IndexBuilder {
	return &IndexBuilder{
		Root:      cfg.Root,
		Languages: cfg.Languages,
		Extractor: extractor,
	}
}

func (b *IndexBuilder) indexPath() string {
	return filepath.Join(b.Root, fesoddoc.IndexFileName)
}

func (b *IndexBuilder) tempPath() string {
	return b.indexPath() + ".tmp"
}

func (b *IndexBuilder) langDir(lang string) string {
	return filepath.Join(b.Root, fesoddoc.DocsDir, lang)
}

// BuildIndex scans the primary language tree and encodes the catalog.
func (b *IndexBuilder) BuildIndex(ctx context.Context) (*fesoddoc.Index, error) {
	if len(b.Languages) == 0 {
		return nil, fesoddoc.Errorf(fesoddoc.EINVALID, "at least one language required")
	}

	files, err := b.walk(b.Languages[0])
	if err != nil {
		return nil, err
	}

	concurrency := b.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	entries := make([]*fesoddoc.CatalogEntry, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, rel := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry, err := b.buildEntry(rel)
			if err != nil {
				return err
			}
			entries[i] = entry
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	content, err := fesoddoc.MarshalJSON(entries, "    ")
	if err != nil {
		return nil, fmt.Errorf("encode index: %w", err)
	}

	return &fesoddoc.Index{
		Entries: entries,
		Content: content,
		Hash:    computeHash(content),
	}, nil
}

// WriteIndex writes idx to a temporary file and renames it over the index.
func (b *IndexBuilder) WriteIndex(ctx context.Context, idx *fesoddoc.Index) (bool, error) {
	existing, err := os.ReadFile(b.indexPath())
	if err == nil && computeHash(existing) == idx.Hash {
		return false, nil
	} else if err != nil && !errors.Is(err, iofs.ErrNotExist) {
		return false, err
	}

	if err := os.WriteFile(b.tempPath(), idx.Content, 0644); err != nil {
		return false, err
	}
	if err := os.Rename(b.tempPath(), b.indexPath()); err != nil {
		_ = os.Remove(b.tempPath())
		return false, err
	}
	return true, nil
}

// walk returns slash-separated paths of markdown files under lang, in
// lexical order. Dot-files and dot-directories are skipped.
func (b *IndexBuilder) walk(lang string) ([]string, error) {
	var files []string
	err := iofs.WalkDir(os.DirFS(b.langDir(lang)), ".", func(p string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return iofs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() && path.Ext(p) == ".md" {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s docs: %w", lang, err)
	}
	return files, nil
}

func (b *IndexBuilder) buildEntry(rel string) (*fesoddoc.CatalogEntry, error) {
	primary, err := b.readMetadata(b.Languages[0], rel)
	if err != nil {
		return nil, err
	}

	var secondary *fesoddoc.DocMetadata
	if len(b.Languages) > 1 {
		secondary, err = b.readMetadata(b.Languages[1], rel)
		if errors.Is(err, iofs.ErrNotExist) {
			secondary = &fesoddoc.DocMetadata{}
		} else if err != nil {
			return nil, err
		}
	} else {
		secondary = &fesoddoc.DocMetadata{}
	}

	title := primary.Title
	if title == "" {
		title = strings.TrimSuffix(path.Base(rel), path.Ext(rel))
	}
	module := moduleLabel(rel)

	name := joinBilingual(title, secondary.Title)
	if module != "" {
		name += ", " + module
	}

	entry := &fesoddoc.CatalogEntry{
		Name:        name,
		DirName:     rel,
		Description: joinBilingual(primary.Description, secondary.Description),
		Module:      module,
		WhenToUse:   joinBilingual(primary.WhenToUse, secondary.WhenToUse),
		Keywords:    mergeKeywords(primary.Keywords, secondary.Keywords),
	}
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	return entry, nil
}

func (b *IndexBuilder) readMetadata(lang, rel string) (*fesoddoc.DocMetadata, error) {
	data, err := os.ReadFile(filepath.Join(b.langDir(lang), filepath.FromSlash(rel)))
	if err != nil {
		return nil, err
	}
	meta, err := b.Extractor.Extract(data)
	if err != nil {
		return nil, fmt.Errorf("extract %s/%s: %w", lang, rel, err)
	}
	return meta, nil
}

// moduleLabel returns the module label for the directory containing rel.
// Files at the language root have no module.
func moduleLabel(rel string) string {
	dir := path.Dir(rel)
	if dir == "." {
		return ""
	}
	dir = path.Base(dir)
	if label, ok := moduleLabels[dir]; ok {
		return label
	}
	return dir
}

// joinBilingual joins primary and secondary text with " | " unless the
// secondary is empty or identical.
func joinBilingual(primary, secondary string) string {
	switch {
	case secondary == "" || secondary == primary:
		return primary
	case primary == "":
		return secondary
	}
	return primary + " | " + secondary
}

// mergeKeywords returns the sorted, lowercased union of keyword lists.
func mergeKeywords(lists ...[]string) []string {
	keywords := []string{}
	for _, list := range lists {
		for _, k := range list {
			if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
				keywords = append(keywords, k)
			}
		}
	}
	slices.Sort(keywords)
	return slices.Compact(keywords)
}

// computeHash computes a hash of the content using xxhash.
func computeHash(content []byte) string {
	return fmt.Sprintf("%x", xxhash.Sum64(bytes.TrimSpace(content)))
}
