package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"github.com/jbialy/staylens"
	"github.com/jbialy/staylens/goquery"
	"github.com/jbialy/staylens/htmltomarkdown"
	"github.com/jbialy/staylens/ratelimit"
	"github.com/jbialy/staylens/resty"
	"github.com/jbialy/staylens/rod"
	staylog "github.com/jbialy/staylens/slog"
	"github.com/jbialy/staylens/tools"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher is closed when the program ends.
	Fetcher staylens.Fetcher

	// Service for end-to-end testing.
	Service *tools.Service
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.Fetcher != nil {
		return m.Fetcher.Close()
	}
	return nil
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
		kong.Name("staylens"),
		kong.Description("Structured listing data extraction and comparison tools."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'staylens --help' to see available commands")
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

	// Diagnostics go to stderr. For the serve command stdout carries the
	// protocol stream and must stay clean.
	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	m.Fetcher, err = buildFetcher(cli, logger)
	if err != nil {
		if cli.Browser {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		}
		return fmt.Errorf("failed to create fetcher: %w", err)
	}
	defer m.Close()

	m.Service = &tools.Service{
		Fetcher:   m.Fetcher,
		Locator:   goquery.NewLocator(),
		Converter: htmltomarkdown.NewConverter(),
		Logger:    logger,
		BaseURL:   cli.BaseURL,
	}
	deps.Service = m.Service

	return kongCtx.Run(deps)
}

// buildFetcher assembles the fetch stack: HTTP or headless browser at the
// bottom, then per-domain rate limiting, then request logging.
func buildFetcher(cli *CLI, logger *slog.Logger) (staylens.Fetcher, error) {
	var fetcher staylens.Fetcher
	if cli.Browser {
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, err
		}
		fetcher = f
	} else {
		fetcher = resty.NewFetcher(
			resty.WithTimeout(time.Duration(cli.Timeout) * time.Second),
		)
	}
	if cli.Rate > 0 {
		fetcher = ratelimit.NewFetcher(fetcher, ratelimit.NewDomainLimiter(cli.Rate))
	}
	return staylog.NewLoggingFetcher(fetcher, logger), nil
}
