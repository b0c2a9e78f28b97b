package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/fesoddoc"
	main "github.com/fwojciec/fesoddoc/cmd/fesoddoc"
	"github.com/fwojciec/fesoddoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints the document reply", func(t *testing.T) {
		t.Parallel()

		var gotQuery, gotLang string
		docs := &mock.DocumentService{
			FindDocumentFn: func(_ context.Context, query, lang string) (*fesoddoc.Document, error) {
				gotQuery, gotLang = query, lang
				return &fesoddoc.Document{Query: query, Lang: "zh", Content: "填充文档"}, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: docs,
		}

		err := (&main.DocCmd{Name: "fill", Lang: "zh"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "Documentation for fill: 填充文档\n", stdout.String())
		assert.Equal(t, "fill", gotQuery)
		assert.Equal(t, "zh", gotLang)
	})

	t.Run("prints not found reply and returns the error", func(t *testing.T) {
		t.Parallel()

		docs := &mock.DocumentService{
			FindDocumentFn: func(_ context.Context, query, _ string) (*fesoddoc.Document, error) {
				return nil, fesoddoc.Errorf(fesoddoc.ENOTFOUND, "%q documentation does not exist", query)
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Documents: docs,
		}

		err := (&main.DocCmd{Name: "pivot"}).Run(deps)

		assert.Equal(t, fesoddoc.ENOTFOUND, fesoddoc.ErrorCode(err))
		assert.Equal(t, "Documentation for pivot: \"pivot\" documentation does not exist\n", stdout.String())
	})
}
