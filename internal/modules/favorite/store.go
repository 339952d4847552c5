// README: Favorite persistence backed by Postgres.
package favorite

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

// Insert adds a favorite; re-favoriting the same listing is a no-op.
func (s *Store) Insert(ctx context.Context, f Favorite) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO favorites (id, user_id, listing_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, listing_id) DO NOTHING
	`, f.ID, f.UserID, f.ListingID, f.CreatedAt)
	return err
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM favorites WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListByUser(ctx context.Context, userID types.ID) ([]Favorite, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, listing_id, created_at
		FROM favorites WHERE user_id = $1 ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs []Favorite
	for rows.Next() {
		var f Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.ListingID, &f.CreatedAt); err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return fs, rows.Err()
}

// Exists reports whether the user already favorited the listing.
func (s *Store) Exists(ctx context.Context, userID, listingID types.ID) (bool, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(1) FROM favorites WHERE user_id = $1 AND listing_id = $2
	`, userID, listingID).Scan(&n)
	return n > 0, err
}

// CountForListing returns how many users favorited the listing; shown
// on the listing detail page.
func (s *Store) CountForListing(ctx context.Context, listingID types.ID) (int, error) {
	var n int
	err := s.db.QueryRow(ctx, `
		SELECT COUNT(1) FROM favorites WHERE listing_id = $1
	`, listingID).Scan(&n)
	return n, err
}
