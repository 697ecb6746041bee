package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Catalog  spectacle.CatalogResolver
	Pipeline *pipeline.Pipeline

	// Store-backed commands only.
	Shows     spectacle.ShowService
	Submitter spectacle.BatchSubmitter
	Submit    pipeline.SubmitOptions

	// Export only.
	Loader            spectacle.Loader
	ContentExtractors map[string]spectacle.ContentExtractor
	Converter         spectacle.Converter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose     bool          `short:"v" help:"Log debug output to stderr"`
	Catalog     string        `type:"path" env:"SPECTACLE_CATALOG" help:"Catalog YAML file (default: built-in catalog)"`
	SourceDir   string        `name:"source-dir" type:"path" env:"SPECTACLE_SOURCE_DIR" help:"Directory holding the show pages"`
	Concurrency int           `short:"c" default:"4" help:"Documents processed at once"`
	Timeout     time.Duration `default:"10s" help:"Load and extract timeout per document"`

	Extract ExtractCmd `cmd:"" help:"Extract show records and print them"`
	Import  ImportCmd  `cmd:"" help:"Extract show records and store them"`
	List    ListCmd    `cmd:"" help:"List stored shows"`
	Show    ShowCmd    `cmd:"" help:"Print a stored show"`
	Update  UpdateCmd  `cmd:"" help:"Edit a stored show"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a stored show"`
	Entries CatalogCmd `cmd:"" name:"catalog" help:"List cataloged shows"`
	Export  ExportCmd  `cmd:"" help:"Export shows as Markdown pages"`
}

// Selection picks the shows a command runs on.
type Selection struct {
	Names []string `arg:"" optional:"" help:"Show display names"`
	All   bool     `short:"a" help:"Use every cataloged show"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Selection `embed:""`
	JSON      bool `help:"Print records as JSON"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Selection  `embed:""`
	Collection string        `default:"spectacles" help:"Target collection"`
	BatchSize  int           `default:"0" help:"Records per batch (0: one batch)"`
	RateLimit  float64       `default:"0" help:"Batches per second (0: unlimited)"`
	Timeout    time.Duration `name:"submit-timeout" default:"30s" help:"Bound on the whole submission"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Collection string `help:"Only shows in this collection"`
	Status     string `help:"Only shows with this status (draft, published, archived)"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID string `arg:"" help:"Show ID"`
}

// UpdateCmd is the "update" subcommand.
type UpdateCmd struct {
	ID          string  `arg:"" help:"Show ID"`
	Title       *string `help:"New title"`
	Description *string `help:"New description"`
	Synopsis    *string `help:"New synopsis"`
	Duration    *int    `help:"New duration in minutes"`
	Price       *int    `help:"New price"`
	Status      *string `help:"New status (draft, published, archived)"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Show ID"`
	Force bool   `help:"Confirm deletion"`
}

// CatalogCmd is the "catalog" subcommand.
type CatalogCmd struct{}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Dir       string `arg:"" type:"path" help:"Output directory"`
	Selection `embed:""`
	Extractor string `enum:"trafilatura,readability" default:"trafilatura" help:"Main content extractor"`
	AssetBase string `name:"asset-base" help:"URL that relative image paths resolve against"`
}
