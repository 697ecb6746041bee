package spectacle

import "context"

// ContentResult holds the main content extracted from a show page.
type ContentResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML with boilerplate
	// (nav, footer, sidebar) removed.
	ContentHTML string
}

// ContentExtractor extracts the main content of a show page.
type ContentExtractor interface {
	Extract(html string) (*ContentResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms clean HTML (e.g., from a ContentExtractor)
	// into Markdown.
	Convert(html string) (string, error)
}

// ExportPage is one show rendered for export.
type ExportPage struct {
	Record *ShowRecord
	Body   string // Markdown
}

// PageStore persists exported pages with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *ExportPage) error
	Commit() error
	Abort() error
}
