package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/kiosque/kiosque"
	"github.com/kiosque/kiosque/config"
	"github.com/kiosque/kiosque/github"
	"github.com/kiosque/kiosque/htmltomarkdown"
	kioshttp "github.com/kiosque/kiosque/http"
	"github.com/kiosque/kiosque/raindrop"
	"github.com/kiosque/kiosque/site"
	kioslog "github.com/kiosque/kiosque/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, kiosque.ErrorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Configuration file path. Set before calling Run().
	ConfigPath string

	// Services for end-to-end testing.
	Documents kiosque.DocumentService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPath: config.DefaultPath(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("kiosque"),
		kong.Description("Download newspaper and magazine articles as markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'kiosque --help' to see available commands")
	}
	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(m.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Set KIOSQUE_CONFIG to use a different configuration path\n")
		return fmt.Errorf("failed to load configuration at %q: %w", m.ConfigPath, err)
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	var clientOpts []kioshttp.Option
	if cfg.Proxy != "" {
		clientOpts = append(clientOpts, kioshttp.WithProxy(cfg.Proxy))
	}
	client, err := kioshttp.NewClient(clientOpts...)
	if err != nil {
		return err
	}

	registry := site.NewRegistry(client, cfg)
	site.RegisterBuiltins(registry)
	for baseURL, sc := range cfg.Sites {
		for _, alias := range sc.Aliases {
			if err := registry.AddAlias(alias, baseURL); err != nil {
				fmt.Fprintf(stderr, "warning: %s\n", kiosque.ErrorMessage(err))
			}
		}
	}

	resolver := kioslog.NewLoggingResolver(registry, logger)
	m.Documents = kioslog.NewLoggingDocumentService(&site.Renderer{
		Resolver:  resolver,
		Converter: htmltomarkdown.NewConverter(),
	}, logger)

	deps.Resolver = resolver
	deps.Sites = registry.Sites()
	deps.Client = client
	deps.Documents = m.Documents

	deps.Bookmarks = map[string]kiosque.BookmarkService{}
	if token := cfg.Token("raindrop"); token != "" {
		deps.Bookmarks["raindrop"] = raindrop.NewClient(token)
	}
	if token := cfg.Token("github"); token != "" {
		deps.Bookmarks["github"] = github.NewClient(token)
	}

	return kongCtx.Run(deps)
}
