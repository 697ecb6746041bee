package mock

import (
	"context"

	"github.com/edjs/spectacle"
)

var _ spectacle.FieldExtractor = (*FieldExtractor)(nil)

// FieldExtractor is a mock implementation of spectacle.FieldExtractor.
type FieldExtractor struct {
	ExtractFn func(ctx context.Context, doc *spectacle.ParsedDocument) (*spectacle.Fields, error)
}

func (e *FieldExtractor) Extract(ctx context.Context, doc *spectacle.ParsedDocument) (*spectacle.Fields, error) {
	return e.ExtractFn(ctx, doc)
}

var _ spectacle.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of spectacle.ContentExtractor.
type ContentExtractor struct {
	ExtractFn func(html string) (*spectacle.ContentResult, error)
}

func (e *ContentExtractor) Extract(html string) (*spectacle.ContentResult, error) {
	return e.ExtractFn(html)
}
