// README: Reminder persistence backed by Postgres.
package reminder

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"roost/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, r Reminder) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO reminders (id, user_id, title, remind_time, recurrence, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.ID, r.UserID, r.Title, r.RemindTime, nullable(r.Recurrence), r.Status, r.CreatedAt)
	return err
}

func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]Reminder, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, title, remind_time, COALESCE(recurrence, ''), status, created_at
		FROM reminders WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rs []Reminder
	for rows.Next() {
		var r Reminder
		if err := rows.Scan(&r.ID, &r.UserID, &r.Title, &r.RemindTime, &r.Recurrence, &r.Status, &r.CreatedAt); err != nil {
			return nil, err
		}
		rs = append(rs, r)
	}
	return rs, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
