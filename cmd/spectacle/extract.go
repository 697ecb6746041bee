package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/edjs/spectacle"
	"github.com/edjs/spectacle/pipeline"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	records, err := extractRecords(deps, c.Selection)
	if err != nil {
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode records: %w", err)
		}
		return nil
	}

	for i, rec := range records {
		if i > 0 {
			fmt.Fprintln(deps.Stdout)
		}
		printRecord(deps.Stdout, rec)
	}
	return nil
}

// names returns the display names the selection names, or every cataloged
// name when All is set.
func (s Selection) names(catalog spectacle.CatalogResolver) ([]string, error) {
	if s.All {
		entries := catalog.Entries()
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.DisplayName
		}
		return names, nil
	}
	if len(s.Names) == 0 {
		return nil, spectacle.Errorf(spectacle.EINVALID, "no show names given. Pass display names or --all")
	}
	return s.Names, nil
}

// extractRecords runs the pipeline over the selection. Failed documents are
// reported on stderr; an error is returned only if no record was produced.
func extractRecords(deps *Dependencies, sel Selection) ([]*spectacle.ShowRecord, error) {
	names, err := sel.names(deps.Catalog)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return nil, err
	}

	progress := func(event pipeline.ProgressEvent) {
		if event.Type == pipeline.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %v\n", event.Error)
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, names, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return nil, err
	}

	if len(result.Records) == 0 {
		err := spectacle.Errorf(spectacle.ENOTFOUND, "no show records produced (%d failed)", len(result.Failures))
		fmt.Fprintf(deps.Stderr, "error: %s\n", spectacle.ErrorMessage(err))
		return nil, err
	}
	return result.Records, nil
}

func printRecord(w io.Writer, rec *spectacle.ShowRecord) {
	if rec.ID != "" {
		fmt.Fprintf(w, "%s  %s\n", rec.ID, rec.Title)
	} else {
		fmt.Fprintf(w, "%s\n", rec.Title)
	}
	fmt.Fprintf(w, "  slug:      %s\n", rec.Slug)
	fmt.Fprintf(w, "  source:    %s\n", rec.SourcePath)
	fmt.Fprintf(w, "  category:  %s\n", rec.Category)
	fmt.Fprintf(w, "  language:  %s\n", rec.Language)
	fmt.Fprintf(w, "  duration:  %d min\n", rec.Duration)
	fmt.Fprintf(w, "  age range: %s\n", rec.AgeRange)
	fmt.Fprintf(w, "  price:     %d\n", rec.Price)
	fmt.Fprintf(w, "  venue:     %s\n", rec.Venue)
	fmt.Fprintf(w, "  dates:     %s\n", rec.Dates)
	fmt.Fprintf(w, "  images:    %d (%d in gallery)\n", len(rec.Images), len(rec.Gallery))
	if len(rec.Cast) > 0 {
		fmt.Fprintf(w, "  cast:      %s\n", strings.Join(rec.Cast, ", "))
	}
	if rec.Status != "" {
		fmt.Fprintf(w, "  status:    %s\n", rec.Status)
	}
}
