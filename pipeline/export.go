package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/edjs/spectacle"
)

// Exporter renders show records as Markdown pages. The body of each page
// is the main content of the record's source document; records whose page
// has no recognizable main content fall back to their synopsis.
type Exporter struct {
	Loader    spectacle.Loader
	Content   spectacle.ContentExtractor
	Converter spectacle.Converter
	Store     spectacle.PageStore
}

// Export saves one page per record and commits them together. Any failure
// aborts the export and leaves the previous one in place.
func (e *Exporter) Export(ctx context.Context, records []*spectacle.ShowRecord) (err error) {
	defer func() {
		if err != nil {
			if abortErr := e.Store.Abort(); abortErr != nil {
				err = errors.Join(err, abortErr)
			}
		}
	}()

	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return err
		}
		body, err := e.body(ctx, rec)
		if err != nil {
			return fmt.Errorf("export %q: %w", rec.DisplayName, err)
		}
		if err := e.Store.Save(ctx, &spectacle.ExportPage{Record: rec, Body: body}); err != nil {
			return fmt.Errorf("export %q: %w", rec.DisplayName, err)
		}
	}
	return e.Store.Commit()
}

func (e *Exporter) body(ctx context.Context, rec *spectacle.ShowRecord) (string, error) {
	doc, err := e.Loader.Load(ctx, rec.SourcePath)
	if err != nil {
		return "", err
	}

	content, err := e.Content.Extract(doc.Raw)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content.ContentHTML) == "" {
		return "# " + rec.Title + "\n\n" + rec.Synopsis, nil
	}

	return e.Converter.Convert(content.ContentHTML)
}
