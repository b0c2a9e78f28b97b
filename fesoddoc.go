// Package fesoddoc serves Apache Fesod API documentation to automated
// assistants over the Model Context Protocol. It loads a JSON catalog of
// known API entries, resolves free-text names against it, and returns the
// matching per-language markdown document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., fs/, goldmark/, mcp/, slog/).
package fesoddoc

import "strings"

// Layout of the document root.
const (
	// IndexFileName is the catalog file at the root of the document tree.
	IndexFileName = "api-index.json"

	// DocsDir holds one subdirectory per language code.
	DocsDir = "docs"
)

// DefaultLanguage is used when a request does not name a language.
const DefaultLanguage = "en"

// DefaultLanguages are the language directories shipped with the docs.
var DefaultLanguages = []string{"en", "zh"}

// Config holds startup configuration shared by all services.
type Config struct {
	// Root is the document root containing IndexFileName and DocsDir.
	Root string `json:"root"`

	// Languages lists supported language codes. The first one is the
	// primary language used when building the index.
	Languages []string `json:"languages"`

	// DefaultLanguage is used when a request omits the language.
	DefaultLanguage string `json:"defaultLanguage"`
}

// Validate returns an error if the config contains invalid fields.
func (c *Config) Validate() error {
	if c.Root == "" {
		return Errorf(EINVALID, "document root required")
	}
	if len(c.Languages) == 0 {
		return Errorf(EINVALID, "at least one language required")
	}
	for _, lang := range c.Languages {
		if !ValidLanguage(lang) {
			return Errorf(EINVALID, "invalid language code %q", lang)
		}
	}
	return nil
}

// ValidLanguage reports whether lang can be used as a single directory
// name under DocsDir.
func ValidLanguage(lang string) bool {
	return lang != "" && !strings.ContainsAny(lang, `/\.`)
}

// PrimaryLanguage returns the first configured language, or
// DefaultLanguage when none is configured.
func (c *Config) PrimaryLanguage() string {
	if len(c.Languages) == 0 {
		return DefaultLanguage
	}
	return c.Languages[0]
}
