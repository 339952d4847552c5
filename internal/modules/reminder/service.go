// README: Reminder service; validates and persists reminder records.
package reminder

import (
	"context"
	"errors"
	"time"

	"roost/internal/types"
)

var ErrBadRequest = errors.New("bad request")

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

type CreateCommand struct {
	// UserID may be empty when the request carried no identifier; the
	// record is still written (known weak point, kept deliberately).
	UserID     types.ID
	Title      string
	RemindTime string
	Recurrence string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) error {
	if cmd.Title == "" || cmd.RemindTime == "" {
		return ErrBadRequest
	}
	return s.store.Insert(ctx, Reminder{
		ID:         types.NewID(),
		UserID:     cmd.UserID,
		Title:      cmd.Title,
		RemindTime: cmd.RemindTime,
		Recurrence: cmd.Recurrence,
		Status:     StatusPending,
		CreatedAt:  time.Now().UTC(),
	})
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]Reminder, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID)
}
