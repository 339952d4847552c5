// README: Appointment service enforcing the status transition table.
package appointment

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

type CreateCommand struct {
	ListingID  types.ID
	TenantID   types.ID
	LandlordID types.ID
	ViewTime   time.Time
	Note       string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.ListingID == "" || cmd.TenantID == "" || cmd.LandlordID == "" || cmd.ViewTime.IsZero() {
		return "", ErrBadRequest
	}
	now := time.Now().UTC()
	a := Appointment{
		ID:         types.NewID(),
		ListingID:  cmd.ListingID,
		TenantID:   cmd.TenantID,
		LandlordID: cmd.LandlordID,
		Status:     StatusPending,
		ViewTime:   cmd.ViewTime,
		Messages:   []Message{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if cmd.Note != "" {
		a.Messages = append(a.Messages, Message{Author: cmd.TenantID, Body: cmd.Note, CreatedAt: now})
	}
	if err := s.store.Insert(ctx, a); err != nil {
		return "", err
	}
	return a.ID, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (Appointment, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByTenant(ctx context.Context, tenantID types.ID) ([]Appointment, error) {
	if tenantID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByTenant(ctx, tenantID)
}

func (s *Service) ListByLandlord(ctx context.Context, landlordID types.ID) ([]Appointment, error) {
	if landlordID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByLandlord(ctx, landlordID)
}

// UpdateStatus validates the transition against the state table before
// touching the row; the conditional UPDATE closes the read-check-write
// race.
func (s *Service) UpdateStatus(ctx context.Context, id types.ID, to Status) error {
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(a.Status, to) {
		return ErrInvalidState
	}
	return s.store.UpdateStatus(ctx, id, a.Status, to)
}

func (s *Service) AddMessage(ctx context.Context, id, author types.ID, body string) error {
	if author == "" || body == "" {
		return ErrBadRequest
	}
	return s.store.AppendMessage(ctx, id, Message{
		Author:    author,
		Body:      body,
		CreatedAt: time.Now().UTC(),
	})
}

// Negotiate proposes a new viewing time; the appointment moves to
// negotiating until the counterparty confirms or cancels.
func (s *Service) Negotiate(ctx context.Context, id, author types.ID, newTime time.Time, note string) error {
	if newTime.IsZero() {
		return ErrBadRequest
	}
	a, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(a.Status, StatusNegotiating) {
		return ErrInvalidState
	}
	if err := s.store.SetViewTime(ctx, id, newTime); err != nil {
		return err
	}
	if note != "" {
		if err := s.store.AppendMessage(ctx, id, Message{Author: author, Body: note, CreatedAt: time.Now().UTC()}); err != nil {
			return err
		}
	}
	return s.store.UpdateStatus(ctx, id, a.Status, StatusNegotiating)
}
