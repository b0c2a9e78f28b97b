// Package goldmark extracts catalog metadata from markdown documents using
// the goldmark parser. YAML frontmatter supplies the title and keywords;
// the document body supplies the description and usage notes.
package goldmark

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fwojciec/fesoddoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Ensure MetadataExtractor implements fesoddoc.MetadataExtractor.
var _ fesoddoc.MetadataExtractor = (*MetadataExtractor)(nil)

// whenToUseHeadings are lowercase fragments identifying the usage section.
var whenToUseHeadings = []string{"when to use", "使用场景", "适用场景"}

// MetadataExtractor implements fesoddoc.MetadataExtractor.
type MetadataExtractor struct {
	md goldmark.Markdown
}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{md: goldmark.New()}
}

// frontmatter is the subset of document frontmatter used by the catalog.
type frontmatter struct {
	Title    string      `yaml:"title"`
	Keywords keywordList `yaml:"keywords"`
}

// keywordList accepts either a YAML sequence or a comma-separated string.
type keywordList []string

func (k *keywordList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		for _, s := range strings.Split(value.Value, ",") {
			if s = strings.TrimSpace(s); s != "" {
				*k = append(*k, s)
			}
		}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*k = list
		return nil
	}
	return fmt.Errorf("keywords: unsupported yaml node kind %d", value.Kind)
}

// Extract parses markdown and returns its catalog metadata. Missing
// frontmatter or sections leave the corresponding fields empty.
func (e *MetadataExtractor) Extract(markdown []byte) (*fesoddoc.DocMetadata, error) {
	front, body := splitFrontmatter(markdown)

	var fm frontmatter
	if len(front) > 0 {
		if err := yaml.Unmarshal(front, &fm); err != nil {
			return nil, fesoddoc.Errorf(fesoddoc.EINVALID, "invalid frontmatter: %s", err)
		}
	}

	meta := &fesoddoc.DocMetadata{
		Title:    strings.TrimSpace(fm.Title),
		Keywords: []string(fm.Keywords),
	}

	doc := e.md.Parser().Parse(text.NewReader(body))

	inUsage := false
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Heading:
			heading := nodeText(n, body)
			inUsage = isWhenToUse(heading)
			if meta.Title == "" && n.Level == 1 {
				meta.Title = heading
			}
		case *ast.Paragraph, *ast.List:
			content := nodeText(n, body)
			if content == "" {
				continue
			}
			if inUsage {
				if meta.WhenToUse == "" {
					meta.WhenToUse = content
				}
				inUsage = false
			} else if meta.Description == "" {
				if _, ok := n.(*ast.Paragraph); ok {
					meta.Description = content
				}
			}
		}
	}

	return meta, nil
}

func isWhenToUse(heading string) bool {
	heading = strings.ToLower(heading)
	for _, h := range whenToUseHeadings {
		if strings.Contains(heading, h) {
			return true
		}
	}
	return false
}

// nodeText returns the source text of n's lines, joined by spaces. Lists
// are flattened to their item texts joined by "; ".
func nodeText(n ast.Node, source []byte) string {
	if list, ok := n.(*ast.List); ok {
		var items []string
		for item := list.FirstChild(); item != nil; item = item.NextSibling() {
			var parts []string
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				if s := nodeText(c, source); s != "" {
					parts = append(parts, s)
				}
			}
			if len(parts) > 0 {
				items = append(items, strings.Join(parts, " "))
			}
		}
		return strings.Join(items, "; ")
	}

	if n.Type() != ast.TypeBlock {
		return ""
	}
	lines := n.Lines()
	parts := make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		if s := strings.TrimSpace(string(seg.Value(source))); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " ")
}

// splitFrontmatter separates a leading "---" delimited YAML block from the
// markdown body. Source without frontmatter is returned unchanged as body.
func splitFrontmatter(src []byte) (front, body []byte) {
	src = bytes.TrimPrefix(src, []byte("\xef\xbb\xbf"))
	if !bytes.HasPrefix(src, []byte("---")) {
		return nil, src
	}

	rest := src[3:]
	nl := bytes.IndexByte(rest, '\n')
	if nl < 0 || len(bytes.TrimSpace(rest[:nl])) != 0 {
		return nil, src
	}
	rest = rest[nl+1:]

	for offset := 0; offset < len(rest); {
		line, next := rest[offset:], len(rest)
		if end := bytes.IndexByte(rest[offset:], '\n'); end >= 0 {
			line, next = rest[offset:offset+end], offset+end+1
		}
		if string(bytes.TrimRight(line, "\r \t")) == "---" {
			return rest[:offset], rest[next:]
		}
		offset = next
	}
	return nil, src
}
