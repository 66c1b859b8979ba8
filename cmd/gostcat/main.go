package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/gostcat"
	"github.com/fwojciec/gostcat/aggregate"
	"github.com/fwojciec/gostcat/goquery"
	gosthttp "github.com/fwojciec/gostcat/http"
	"github.com/fwojciec/gostcat/search"
	gostslog "github.com/fwojciec/gostcat/slog"
	"github.com/fwojciec/gostcat/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Store service for end-to-end testing.
	StandardService gostcat.StandardService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
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
		kong.Name("gostcat"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'gostcat --help' to see available commands")
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

	// Open database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set GOSTCAT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	logger := slog.New(slog.NewTextHandler(stderr, nil))

	// Wire core services into dependencies
	m.StandardService = sqlite.NewStandardService(m.DB)
	deps.Standards = m.StandardService

	fetcher := gosthttp.NewRetryFetcher(gosthttp.NewFetcher())
	defer fetcher.Close()

	registry := goquery.NewRegistry()
	if err := registerSources(registry, fetcher, logger); err != nil {
		return fmt.Errorf("failed to register sources: %w", err)
	}
	deps.Sources = registry

	deps.Aggregator = &aggregate.Aggregator{
		Sources:   registry,
		Standards: deps.Standards,
		Limiter:   aggregate.NewDomainLimiter(1.0),
		Logger:    logger,
	}
	deps.Searcher = gostslog.NewLoggingSearcher(
		search.NewService(deps.Standards, deps.Aggregator), logger)

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("GOSTCAT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "gostcat.db"
	}
	dir := filepath.Join(home, ".gostcat")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "gostcat.db")
}

// registerSources registers every origin adapter in its fixed order. The
// order is the merge tie-break order, so keep the official portal first.
func registerSources(registry *goquery.Registry, fetcher gostcat.Fetcher, logger *slog.Logger) error {
	sources := []gostcat.Source{
		goquery.NewGostRuSource(fetcher),
		goquery.NewCntdSource(fetcher),
		goquery.NewMeganormSource(fetcher),
		goquery.NewProtectGostSource(fetcher),
		goquery.NewStroyinfSource(fetcher),
		goquery.NewInternetLawSource(fetcher),
		goquery.NewLibGostSource(fetcher),
	}
	for _, src := range sources {
		if err := registry.Register(gostslog.NewLoggingSource(src, logger)); err != nil {
			return err
		}
	}
	return nil
}
