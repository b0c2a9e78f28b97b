package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/fesoddoc"
	"github.com/fwojciec/fesoddoc/mock"
	fesodslog "github.com/fwojciec/fesoddoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingDocumentService_FindDocument(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with query, lang and path", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			FindDocumentFn: func(ctx context.Context, query, lang string) (*fesoddoc.Document, error) {
				return &fesoddoc.Document{Query: query, Lang: "en", Path: "docs/en/fill.md", Content: "Fill docs"}, nil
			},
		}

		svc := fesodslog.NewLoggingDocumentService(inner, debugLogger(&buf))
		doc, err := svc.FindDocument(context.Background(), "fill", "en")

		require.NoError(t, err)
		assert.Equal(t, "Fill docs", doc.Content)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "document fetch")
		assert.Contains(t, output, "query=fill")
		assert.Contains(t, output, "lang=en")
		assert.Contains(t, output, "path=docs/en/fill.md")
		assert.Contains(t, output, "bytes=9")
	})

	t.Run("logs not found at info level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			FindDocumentFn: func(ctx context.Context, query, lang string) (*fesoddoc.Document, error) {
				return nil, fesoddoc.Errorf(fesoddoc.ENOTFOUND, "fill fr documentation does not exist")
			},
		}

		svc := fesodslog.NewLoggingDocumentService(inner, debugLogger(&buf))
		_, err := svc.FindDocument(context.Background(), "fill", "fr")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "code=not_found")
		assert.NotContains(t, output, "path=")
	})

	t.Run("logs read failures at error level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.DocumentService{
			FindDocumentFn: func(ctx context.Context, query, lang string) (*fesoddoc.Document, error) {
				return nil, fesoddoc.Errorf(fesoddoc.EINTERNAL, "failed to get fill en documentation")
			},
		}

		svc := fesodslog.NewLoggingDocumentService(inner, debugLogger(&buf))
		_, err := svc.FindDocument(context.Background(), "fill", "en")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
	})
}
