package mcp

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/fesoddoc"
)

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolListAPI(),
		s.toolGetAPIDoc(),
	}
}

// ─── list-api ────────────────────────────────────────────────────────────────

func (s *Server) toolListAPI() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list-api",
		mcplib.WithDescription(`Use this tool when developing Excel operations for a business requirement with the Fesod framework.
It only returns the list of features (APIs) the framework provides.
After calling it, choose the APIs that fit the requirement and write the Excel code with them.
Each element of the list has this structure:
`+"```ts"+`
interface ComponentData {
  // API/feature name
  name: string;
  // documentation file name
  dirName: string;
  // feature description
  description: string;
  // owning module
  module: string;
  // when to use it
  whenToUse: string;
  // keywords
  keywords: string[];
}
`+"```"),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListAPI}
}

func (s *Server) handleListAPI(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	entries, err := s.catalog.FindCatalog(ctx)
	if err != nil {
		// An unreadable index means nothing is available, not a failed call.
		s.logger.ErrorContext(ctx, "mcp: list-api: catalog unavailable", "err", err)
		entries = []*fesoddoc.CatalogEntry{}
	}

	text, err := fesoddoc.FormatCatalog(entries)
	if err != nil {
		return resultErr(fmt.Errorf("list-api: serialise: %w", err)), nil
	}
	return resultText(text), nil
}

// ─── get-api-doc ─────────────────────────────────────────────────────────────

func (s *Server) toolGetAPIDoc() mcpsrv.ServerTool {
	tool := mcplib.NewTool("get-api-doc",
		mcplib.WithDescription(`Get the detailed documentation of a specific Fesod API or feature by name.
Use it when:
1. the user asks how to use a specific API or feature;
2. the user needs an API's introduction, usage scenarios or example code.`),
		mcplib.WithString("name",
			mcplib.Description("API or feature name, for example: Simple Write, Fill."),
			mcplib.Required(),
		),
		mcplib.WithString("lang",
			mcplib.Description(fmt.Sprintf("Documentation language, defaults to %s. Available: %s.",
				fesoddoc.DefaultLanguage, strings.Join(s.languages, ", "))),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleGetAPIDoc}
}

func (s *Server) handleGetAPIDoc(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	name, ok := stringArg(req, "name")
	if !ok || name == "" {
		return resultErr(errors.New("get-api-doc: name is required")), nil
	}
	lang, _ := stringArg(req, "lang")

	doc, err := s.documents.FindDocument(ctx, name, lang)
	if err != nil && fesoddoc.ErrorCode(err) != fesoddoc.ENOTFOUND {
		s.logger.ErrorContext(ctx, "mcp: get-api-doc: document unavailable", "name", name, "lang", lang, "err", err)
	}
	return resultText(fesoddoc.FormatDocument(name, doc, err)), nil
}
