package mock

import (
	"context"

	"github.com/edjs/spectacle"
)

var _ spectacle.ShowService = (*ShowService)(nil)

// ShowService is a mock implementation of spectacle.ShowService.
type ShowService struct {
	CreateShowFn   func(ctx context.Context, show *spectacle.ShowRecord) error
	FindShowByIDFn func(ctx context.Context, id string) (*spectacle.ShowRecord, error)
	FindShowsFn    func(ctx context.Context, filter spectacle.ShowFilter) ([]*spectacle.ShowRecord, error)
	UpdateShowFn   func(ctx context.Context, id string, upd spectacle.ShowUpdate) (*spectacle.ShowRecord, error)
	DeleteShowFn   func(ctx context.Context, id string) error
}

func (s *ShowService) CreateShow(ctx context.Context, show *spectacle.ShowRecord) error {
	return s.CreateShowFn(ctx, show)
}

func (s *ShowService) FindShowByID(ctx context.Context, id string) (*spectacle.ShowRecord, error) {
	return s.FindShowByIDFn(ctx, id)
}

func (s *ShowService) FindShows(ctx context.Context, filter spectacle.ShowFilter) ([]*spectacle.ShowRecord, error) {
	return s.FindShowsFn(ctx, filter)
}

func (s *ShowService) UpdateShow(ctx context.Context, id string, upd spectacle.ShowUpdate) (*spectacle.ShowRecord, error) {
	return s.UpdateShowFn(ctx, id, upd)
}

func (s *ShowService) DeleteShow(ctx context.Context, id string) error {
	return s.DeleteShowFn(ctx, id)
}
