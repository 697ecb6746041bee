package spectacle

import (
	"context"

	"golang.org/x/net/html"
)

// ParsedDocument is one source document read from disk and parsed into a
// node tree. It is owned by a single pipeline run and must not be mutated
// once loaded; extractors share it read-only.
type ParsedDocument struct {
	Path string
	Raw  string
	Root *html.Node
}

// Loader reads and parses source documents.
type Loader interface {
	// Load reads the document at path and parses it.
	// Returns ENOTFOUND if no file exists at path, EMALFORMED if the file
	// is not markup text, and EUNAVAILABLE if it cannot be read in time.
	Load(ctx context.Context, path string) (*ParsedDocument, error)
}
