package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/fesoddoc"
	"github.com/fwojciec/fesoddoc/fs"
	"github.com/fwojciec/fesoddoc/goldmark"
	"github.com/fwojciec/fesoddoc/inmem"
	fesodslog "github.com/fwojciec/fesoddoc/slog"
)

// version is reported to MCP clients. Overridden at build time with
// -ldflags "-X main.version=...".
var version = "1.0.0"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config is populated from flags, environment and the optional config
	// file during Run.
	Config fesoddoc.Config

	// Services for end-to-end testing. Wired from Config when nil.
	Catalog   fesoddoc.CatalogService
	Documents fesoddoc.DocumentService
	Index     fesoddoc.IndexService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Config: fesoddoc.Config{
			Languages:       fesoddoc.DefaultLanguages,
			DefaultLanguage: fesoddoc.DefaultLanguage,
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("fesoddoc"),
		kong.Description("Serve Apache Fesod API documentation over the Model Context Protocol."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.Configuration(kong.JSON),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'fesoddoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	m.Config.Root = cli.Root
	m.Config.Languages = cli.Languages
	if err := m.Config.Validate(); err != nil {
		fmt.Fprintln(stderr, "Hint: Set FESOD_DOC_ROOT and FESOD_LANGUAGES to point at the documentation tree")
		return err
	}
	deps.Config = m.Config

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger

	m.wire(logger)
	deps.Catalog = m.Catalog
	deps.Documents = m.Documents
	deps.Index = m.Index

	return kongCtx.Run(deps)
}

// wire builds any service not already set on m. Both lookup services
// share one cache so a document fetch reuses the loaded catalog.
func (m *Main) wire(logger *slog.Logger) {
	fsys := os.DirFS(m.Config.Root)
	cache := inmem.NewCache()

	if m.Catalog == nil {
		m.Catalog = fesodslog.NewLoggingCatalogService(fs.NewCatalogService(fsys, cache), logger)
	}
	if m.Documents == nil {
		docs := fs.NewDocumentService(fsys, m.Catalog, cache)
		docs.DefaultLanguage = m.Config.DefaultLanguage
		m.Documents = fesodslog.NewLoggingDocumentService(docs, logger)
	}
	if m.Index == nil {
		m.Index = fs.NewIndexBuilder(m.Config, goldmark.NewMetadataExtractor())
	}
}

// newLogger returns a text logger on w. Logs never go to stdout, which
// carries the stdio transport.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fesoddoc.Errorf(fesoddoc.EINVALID, "invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
