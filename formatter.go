package fesoddoc

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FormatCatalog formats catalog entries as the list-api reply text.
// A nil slice is rendered as an empty JSON array.
func FormatCatalog(entries []*CatalogEntry) (string, error) {
	if entries == nil {
		entries = []*CatalogEntry{}
	}
	data, err := MarshalJSON(entries, "")
	if err != nil {
		return "", err
	}
	return "Available Fesod APIs: " + strings.TrimSuffix(string(data), "\n"), nil
}

// FormatDocument formats the outcome of a document lookup as the
// get-api-doc reply text. On error the error message takes the place of
// the document body, so not-found and read failures read as plain text.
func FormatDocument(query string, doc *Document, err error) string {
	body := ErrorMessage(err)
	if err == nil && doc != nil {
		body = doc.Content
	}
	return "Documentation for " + query + ": " + body
}

// MarshalJSON encodes v without HTML escaping so that markdown and CJK
// text survive unchanged. A non-empty indent pretty-prints the output.
func MarshalJSON(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
