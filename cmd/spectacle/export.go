package main

import (
	"fmt"
	"path/filepath"

	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/fs"
	"github.com/edjs/spectacle/pipeline"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	content, ok := deps.ContentExtractors[c.Extractor]
	if !ok {
		err := spectacle.Errorf(spectacle.EINVALID, "unknown content extractor %q", c.Extractor)
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	records, err := extractRecords(deps, c.Selection)
	if err != nil {
		return err
	}

	dir := filepath.Clean(c.Dir)
	exporter := &pipeline.Exporter{
		Loader:    deps.Loader,
		Content:   content,
		Converter: deps.Converter,
		Store:     fs.NewFileStore(filepath.Dir(dir), filepath.Base(dir)),
	}
	if err := exporter.Export(deps.Ctx, records); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d shows to %s\n", len(records), dir)
	return nil
}
