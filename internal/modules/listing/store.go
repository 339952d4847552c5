// README: Listing store backed by Postgres with a Redis cache of the published set.
package listing

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"roost/internal/types"
)

const publishedCacheKey = "listing:published"

const listingColumns = `
	id, landlord_id, title, address, type, price, deposit, floor, area, rooms,
	amenities, description, images, lat, lng, is_published, created_at, updated_at`

type Store struct {
	db       *pgxpool.Pool
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewStore(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) *Store {
	return &Store{db: db, redis: redisClient, cacheTTL: cacheTTL}
}

// ListPublished returns every published listing, newest first. The set
// is served from Redis when fresh; a cache failure falls through to the
// database rather than failing the request.
func (s *Store) ListPublished(ctx context.Context) ([]Listing, error) {
	if cached, err := s.redis.Get(ctx, publishedCacheKey).Bytes(); err == nil {
		var ls []Listing
		if jsonErr := json.Unmarshal(cached, &ls); jsonErr == nil {
			return ls, nil
		}
	}

	rows, err := s.db.Query(ctx, `SELECT `+listingColumns+`
		FROM listings WHERE is_published ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ls, err := collectListings(rows)
	if err != nil {
		return nil, err
	}

	if payload, jsonErr := json.Marshal(ls); jsonErr == nil {
		if cacheErr := s.redis.Set(ctx, publishedCacheKey, payload, s.cacheTTL).Err(); cacheErr != nil {
			log.Printf("listing: cache set failed: %v", cacheErr)
		}
	}
	return ls, nil
}

func (s *Store) ListByLandlord(ctx context.Context, landlordID types.ID) ([]Listing, error) {
	rows, err := s.db.Query(ctx, `SELECT `+listingColumns+`
		FROM listings WHERE landlord_id = $1 ORDER BY created_at DESC`, landlordID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectListings(rows)
}

func (s *Store) Get(ctx context.Context, id types.ID) (Listing, error) {
	row := s.db.QueryRow(ctx, `SELECT `+listingColumns+`
		FROM listings WHERE id = $1`, id)
	l, err := scanListing(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Listing{}, ErrNotFound
	}
	return l, err
}

func (s *Store) Create(ctx context.Context, l Listing) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO listings (`+listingColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
	`, l.ID, l.LandlordID, l.Title, l.Address, l.Type, l.Price, l.Deposit, l.Floor,
		l.Area, l.Rooms, l.Amenities, l.Description, l.Images, l.Lat, l.Lng,
		l.IsPublished, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		return err
	}
	s.invalidatePublished(ctx)
	return nil
}

func (s *Store) Update(ctx context.Context, l Listing) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE listings SET
			title = $2, address = $3, type = $4, price = $5, deposit = $6,
			floor = $7, area = $8, rooms = $9, amenities = $10, description = $11,
			images = $12, lat = $13, lng = $14, is_published = $15, updated_at = $16
		WHERE id = $1
	`, l.ID, l.Title, l.Address, l.Type, l.Price, l.Deposit, l.Floor, l.Area,
		l.Rooms, l.Amenities, l.Description, l.Images, l.Lat, l.Lng,
		l.IsPublished, l.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.invalidatePublished(ctx)
	return nil
}

func (s *Store) Delete(ctx context.Context, id types.ID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.invalidatePublished(ctx)
	return nil
}

func (s *Store) invalidatePublished(ctx context.Context) {
	if err := s.redis.Del(ctx, publishedCacheKey).Err(); err != nil {
		log.Printf("listing: cache invalidation failed: %v", err)
	}
}

func collectListings(rows pgx.Rows) ([]Listing, error) {
	var ls []Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		ls = append(ls, l)
	}
	return ls, rows.Err()
}

func scanListing(row pgx.Row) (Listing, error) {
	var l Listing
	err := row.Scan(&l.ID, &l.LandlordID, &l.Title, &l.Address, &l.Type, &l.Price,
		&l.Deposit, &l.Floor, &l.Area, &l.Rooms, &l.Amenities, &l.Description,
		&l.Images, &l.Lat, &l.Lng, &l.IsPublished, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}
