// Package mcp exposes the Fesod API catalog to assistants over the Model
// Context Protocol using github.com/mark3labs/mcp-go.
//
// The server is read-only. It registers two tools, list-api and
// get-api-doc, and one prompt, system-description. Expected failures such
// as unknown names or missing translations are returned as ordinary text so
// the assistant can relay them.
//
// Transport: stdio (default) for local agent integrations, or Streamable
// HTTP for remote agents.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/fesoddoc"
)

const (
	serverName     = "Fesod (Apache Fesod) MCP Service"
	defaultVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication.
	TransportStdio Transport = "stdio"
	// TransportHTTP uses the Streamable HTTP transport.
	TransportHTTP Transport = "http"
)

// Server wraps an MCP server and the catalog services behind it.
type Server struct {
	mcp       *mcpsrv.MCPServer
	catalog   fesoddoc.CatalogService
	documents fesoddoc.DocumentService
	logger    *slog.Logger
	version   string
	languages []string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. A nil logger falls back to slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg != nil {
			s.logger = lg
		}
	}
}

// WithVersion sets the version reported to clients.
func WithVersion(version string) Option {
	return func(s *Server) {
		if version != "" {
			s.version = version
		}
	}
}

// WithLanguages sets the language codes advertised in the get-api-doc
// tool description.
func WithLanguages(langs []string) Option {
	return func(s *Server) {
		if len(langs) > 0 {
			s.languages = langs
		}
	}
}

// New creates a new MCP server backed by the given services. Tools and the
// prompt are registered immediately; nothing is served until one of the
// Serve methods is called.
func New(catalog fesoddoc.CatalogService, documents fesoddoc.DocumentService, opts ...Option) *Server {
	s := &Server{
		catalog:   catalog,
		documents: documents,
		logger:    slog.Default(),
		version:   defaultVersion,
		languages: fesoddoc.DefaultLanguages,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.mcp = mcpsrv.NewMCPServer(
		serverName,
		s.version,
		mcpsrv.WithToolCapabilities(false),
		mcpsrv.WithPromptCapabilities(false),
		mcpsrv.WithRecovery(),
		mcpsrv.WithInstructions(instructions),
	)

	for _, t := range s.tools() {
		s.mcp.AddTool(t.Tool, t.Handler)
	}
	s.mcp.AddPrompt(systemDescriptionPrompt(), s.handleSystemDescription)

	return s
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *mcpsrv.MCPServer {
	return s.mcp
}

// ServeStdio serves MCP over in/out until ctx is cancelled or in is
// closed. Logs must not be written to out.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, in, out); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP serves MCP as a Streamable HTTP server on addr until ctx is
// cancelled. addr is a host:port string such as "127.0.0.1:8484".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// Serve runs the server on the selected transport.
func (s *Server) Serve(ctx context.Context, transport Transport, addr string, in io.Reader, out io.Writer) error {
	switch transport {
	case TransportStdio, "":
		return s.ServeStdio(ctx, in, out)
	case TransportHTTP:
		return s.ServeHTTP(ctx, addr)
	}
	return fesoddoc.Errorf(fesoddoc.EINVALID, "unknown transport %q", transport)
}

// resultText wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(err.Error())},
		IsError: true,
	}
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
