package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fesoddoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Config    fesoddoc.Config
	Catalog   fesoddoc.CatalogService
	Documents fesoddoc.DocumentService
	Index     fesoddoc.IndexService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    kong.ConfigFlag `help:"Load flag values from a JSON file."`
	Root      string          `env:"FESOD_DOC_ROOT" default:"./docs-root" help:"Document root containing api-index.json and docs/"`
	Languages []string        `env:"FESOD_LANGUAGES" default:"en,zh" help:"Supported language codes, primary first"`
	LogLevel  string          `env:"FESOD_LOG_LEVEL" default:"info" enum:"debug,info,warn,error" help:"Log level (debug, info, warn, error)"`

	Serve ServeCmd `cmd:"" help:"Run the MCP server"`
	List  ListCmd  `cmd:"" help:"List all documented APIs"`
	Doc   DocCmd   `cmd:"" help:"Show the documentation for an API"`
	Index IndexCmd `cmd:"" help:"Regenerate api-index.json from the markdown docs"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Transport string `default:"stdio" enum:"stdio,http" help:"Transport to serve on (stdio, http)"`
	Addr      string `default:"127.0.0.1:8484" help:"Listen address for the http transport"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DocCmd is the "doc" subcommand.
type DocCmd struct {
	Name string `arg:"" help:"API name, keyword or file name"`
	Lang string `help:"Documentation language (defaults to en)"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	DryRun bool `short:"n" help:"Print the generated index instead of writing it"`
}
