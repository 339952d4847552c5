// README: Appointment persistence backed by Postgres; messages stored as jsonb.
package appointment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"roost/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, a Appointment) error {
	msgs, err := json.Marshal(a.Messages)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO appointments (id, listing_id, tenant_id, landlord_id, status, view_time, messages, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, a.ID, a.ListingID, a.TenantID, a.LandlordID, a.Status, a.ViewTime, msgs, a.CreatedAt, a.UpdatedAt)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (Appointment, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, listing_id, tenant_id, landlord_id, status, view_time, messages, created_at, updated_at
		FROM appointments WHERE id = $1
	`, id)
	a, err := scanAppointment(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Appointment{}, ErrNotFound
	}
	return a, err
}

func (s *Store) ListByTenant(ctx context.Context, tenantID types.ID) ([]Appointment, error) {
	return s.list(ctx, "tenant_id", tenantID)
}

func (s *Store) ListByLandlord(ctx context.Context, landlordID types.ID) ([]Appointment, error) {
	return s.list(ctx, "landlord_id", landlordID)
}

// UpdateStatus moves the appointment from → to atomically; 0 rows means
// the status changed underneath us and the caller should re-read.
func (s *Store) UpdateStatus(ctx context.Context, id types.ID, from, to Status) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE appointments SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
	`, id, from, to, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInvalidState
	}
	return nil
}

func (s *Store) AppendMessage(ctx context.Context, id types.ID, m Message) error {
	msg, err := json.Marshal(m)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE appointments SET messages = messages || $2::jsonb, updated_at = $3
		WHERE id = $1
	`, id, msg, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetViewTime(ctx context.Context, id types.ID, viewTime time.Time) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE appointments SET view_time = $2, updated_at = $3
		WHERE id = $1
	`, id, viewTime, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) list(ctx context.Context, column string, id types.ID) ([]Appointment, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, listing_id, tenant_id, landlord_id, status, view_time, messages, created_at, updated_at
		FROM appointments WHERE `+column+` = $1 ORDER BY created_at DESC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var as []Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		as = append(as, a)
	}
	return as, rows.Err()
}

func scanAppointment(row pgx.Row) (Appointment, error) {
	var a Appointment
	var msgs []byte
	err := row.Scan(&a.ID, &a.ListingID, &a.TenantID, &a.LandlordID, &a.Status,
		&a.ViewTime, &msgs, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Appointment{}, err
	}
	if len(msgs) > 0 {
		if err := json.Unmarshal(msgs, &a.Messages); err != nil {
			return Appointment{}, err
		}
	}
	return a, nil
}
