// README: Favorite service for add/remove/list/count.
package favorite

import (
	"context"
	"time"

	"roost/internal/types"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Add(ctx context.Context, userID, listingID types.ID) error {
	if userID == "" || listingID == "" {
		return ErrBadRequest
	}
	return s.store.Insert(ctx, Favorite{
		ID:        types.NewID(),
		UserID:    userID,
		ListingID: listingID,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *Service) Remove(ctx context.Context, id types.ID) error {
	if id == "" {
		return ErrBadRequest
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]Favorite, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) IsFavorited(ctx context.Context, userID, listingID types.ID) (bool, error) {
	if userID == "" || listingID == "" {
		return false, ErrBadRequest
	}
	return s.store.Exists(ctx, userID, listingID)
}

func (s *Service) CountForListing(ctx context.Context, listingID types.ID) (int, error) {
	return s.store.CountForListing(ctx, listingID)
}
