// README: Listing service; geocodes new addresses and fronts the store.
package listing

import (
	"context"
	"log"
	"time"

	"roost/internal/types"
)

// Fallback coordinates (Yunlin county) used when geocoding fails, so a
// listing still lands somewhere sensible on the map page.
const (
	defaultLat = 23.690985
	defaultLng = 120.527788
)

// Geocoder resolves a street address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

type Service struct {
	store    *Store
	geocoder Geocoder
}

// NewService creates a Service. geocoder may be nil when no maps key is
// configured; new listings then get the fallback coordinates.
func NewService(store *Store, geocoder Geocoder) *Service {
	return &Service{store: store, geocoder: geocoder}
}

type CreateCommand struct {
	LandlordID  types.ID
	Title       string
	Address     string
	Type        string
	Price       float64
	Deposit     float64
	Floor       int
	Area        float64
	Rooms       int
	Amenities   []string
	Description string
	Images      []string
	IsPublished bool
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.LandlordID == "" || cmd.Title == "" {
		return "", ErrBadRequest
	}

	lat, lng := s.resolveCoordinates(ctx, cmd.Address)

	now := time.Now().UTC()
	l := Listing{
		ID:          types.NewID(),
		LandlordID:  cmd.LandlordID,
		Title:       cmd.Title,
		Address:     cmd.Address,
		Type:        cmd.Type,
		Price:       cmd.Price,
		Deposit:     cmd.Deposit,
		Floor:       cmd.Floor,
		Area:        cmd.Area,
		Rooms:       cmd.Rooms,
		Amenities:   cmd.Amenities,
		Description: cmd.Description,
		Images:      cmd.Images,
		Lat:         lat,
		Lng:         lng,
		IsPublished: cmd.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if l.Type == "" {
		l.Type = "獨立套房"
	}
	if err := s.store.Create(ctx, l); err != nil {
		return "", err
	}
	return l.ID, nil
}

func (s *Service) Update(ctx context.Context, l Listing) error {
	if l.ID == "" {
		return ErrBadRequest
	}
	l.UpdatedAt = time.Now().UTC()
	return s.store.Update(ctx, l)
}

func (s *Service) Delete(ctx context.Context, id types.ID) error {
	if id == "" {
		return ErrBadRequest
	}
	return s.store.Delete(ctx, id)
}

func (s *Service) Get(ctx context.Context, id types.ID) (Listing, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListPublished(ctx context.Context) ([]Listing, error) {
	return s.store.ListPublished(ctx)
}

func (s *Service) ListByLandlord(ctx context.Context, landlordID types.ID) ([]Listing, error) {
	if landlordID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByLandlord(ctx, landlordID)
}

func (s *Service) resolveCoordinates(ctx context.Context, address string) (float64, float64) {
	if s.geocoder == nil || address == "" {
		return defaultLat, defaultLng
	}
	lat, lng, err := s.geocoder.Geocode(ctx, address)
	if err != nil {
		log.Printf("listing: geocode %q failed, using defaults: %v", address, err)
		return defaultLat, defaultLng
	}
	return lat, lng
}
