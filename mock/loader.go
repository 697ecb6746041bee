package mock

import (
	"context"

	"github.com/edjs/spectacle"
)

var _ spectacle.Loader = (*Loader)(nil)

// Loader is a mock implementation of spectacle.Loader.
type Loader struct {
	LoadFn func(ctx context.Context, path string) (*spectacle.ParsedDocument, error)
}

func (l *Loader) Load(ctx context.Context, path string) (*spectacle.ParsedDocument, error) {
	return l.LoadFn(ctx, path)
}
