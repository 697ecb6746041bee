package mock

import (
	"context"

	"github.com/edjs/spectacle"
)

var _ spectacle.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of spectacle.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *spectacle.ExportPage) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *spectacle.ExportPage) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
