package fesoddoc_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/fesoddoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCatalog(t *testing.T) {
	t.Parallel()

	t.Run("embeds entries as JSON", func(t *testing.T) {
		t.Parallel()

		entries := []*fesoddoc.CatalogEntry{
			{Name: "Fill", DirName: "fill.md", Keywords: []string{"populate"}},
		}

		text, err := fesoddoc.FormatCatalog(entries)

		require.NoError(t, err)
		assert.Equal(t, `Available Fesod APIs: [{"name":"Fill","dirName":"fill.md","description":"","module":"","whenToUse":"","keywords":["populate"]}]`, text)
	})

	t.Run("renders nil as empty array", func(t *testing.T) {
		t.Parallel()

		text, err := fesoddoc.FormatCatalog(nil)

		require.NoError(t, err)
		assert.Equal(t, "Available Fesod APIs: []", text)
	})

	t.Run("does not escape markup", func(t *testing.T) {
		t.Parallel()

		entries := []*fesoddoc.CatalogEntry{
			{Name: "List<T> & Map", DirName: "generic.md"},
		}

		text, err := fesoddoc.FormatCatalog(entries)

		require.NoError(t, err)
		assert.Contains(t, text, `"List<T> & Map"`)
	})
}

func TestFormatDocument(t *testing.T) {
	t.Parallel()

	t.Run("prefixes content with the query", func(t *testing.T) {
		t.Parallel()

		doc := &fesoddoc.Document{Query: "populate", Content: "Fill docs"}

		assert.Equal(t, "Documentation for populate: Fill docs", fesoddoc.FormatDocument("populate", doc, nil))
	})

	t.Run("uses the error message in place of content", func(t *testing.T) {
		t.Parallel()

		err := fesoddoc.Errorf(fesoddoc.ENOTFOUND, "fill fr documentation does not exist")

		assert.Equal(t, "Documentation for fill: fill fr documentation does not exist", fesoddoc.FormatDocument("fill", nil, err))
	})

	t.Run("hides foreign error details", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Documentation for fill: Internal error.", fesoddoc.FormatDocument("fill", nil, errors.New("boom")))
	})
}
