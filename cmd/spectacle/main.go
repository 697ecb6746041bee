package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/fs"
	"github.com/edjs/spectacle/goquery"
	"github.com/edjs/spectacle/htmltomarkdown"
	"github.com/edjs/spectacle/pipeline"
	"github.com/edjs/spectacle/readability"
	spslog "github.com/edjs/spectacle/slog"
	"github.com/edjs/spectacle/sqlite"
	"github.com/edjs/spectacle/trafilatura"
	"github.com/edjs/spectacle/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

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

// storeCommands are the commands that need the record store.
var storeCommands = map[string]bool{
	"import": true,
	"list":   true,
	"show":   true,
	"update": true,
	"delete": true,
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
		kong.Name("spectacle"),
		kong.Description("Extract show records from the legacy show pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'spectacle --help' to see available commands")
	}
	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	catalog, err := loadCatalog(cli.Catalog, cli.SourceDir)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}
	deps.Catalog = spslog.NewLoggingCatalog(catalog, deps.Logger)

	loader := spslog.NewLoggingLoader(fs.NewLoader(fs.WithTimeout(cli.Timeout)), deps.Logger)
	deps.Loader = loader
	deps.Pipeline = &pipeline.Pipeline{
		Catalog:     deps.Catalog,
		Loader:      loader,
		Extractor:   spslog.NewLoggingExtractor(goquery.NewExtractor(spectacle.DefaultVocabulary()), deps.Logger),
		Concurrency: cli.Concurrency,
		LoadTimeout: cli.Timeout,
	}

	if cmd == "export" {
		deps.ContentExtractors = map[string]spectacle.ContentExtractor{
			"trafilatura": trafilatura.NewExtractor(),
			"readability": readability.NewExtractor(),
		}
		deps.Converter = htmltomarkdown.NewConverter(htmltomarkdown.WithAssetBase(cli.Export.AssetBase))
	}

	if storeCommands[cmd] {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set SPECTACLE_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		shows := sqlite.NewShowService(m.DB)
		deps.Shows = shows
		deps.Submitter = spslog.NewLoggingSubmitter(sqlite.NewSubmitter(shows), deps.Logger)
		deps.Submit = pipeline.SubmitOptions{
			Logger: func(format string, args ...any) {
				fmt.Fprintf(stderr, "  "+format+"\n", args...)
			},
		}
	}

	return kongCtx.Run(deps)
}

// loadCatalog reads the catalog file at path, or returns the built-in
// catalog when path is empty. A non-empty sourceDir overrides the base
// directory relative source paths resolve against.
func loadCatalog(path, sourceDir string) (*spectacle.Catalog, error) {
	if path != "" {
		return yaml.LoadCatalog(path, sourceDir)
	}
	return spectacle.NewCatalog(sourceDir, spectacle.DefaultCatalogEntries())
}

func defaultDBPath() string {
	if path := os.Getenv("SPECTACLE_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "spectacle.db"
	}
	dir := filepath.Join(home, ".spectacle")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "spectacle.db")
}
