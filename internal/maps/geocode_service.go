// README: Address geocoding via Google Maps for new listings.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// GeocodeService resolves street addresses to coordinates so listings
// can be plotted on the map-browse page.
type GeocodeService struct {
	client *maps.Client
}

// NewGeocodeService creates a GeocodeService with the given API key.
func NewGeocodeService(apiKey string) (*GeocodeService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodeService{client: client}, nil
}

// Geocode returns the coordinates of the given address.
func (s *GeocodeService) Geocode(ctx context.Context, address string) (lat, lng float64, err error) {
	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "zh-TW",
		Region:   "TW",
	})
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding api error: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("no geocoding result for %q", address)
	}
	loc := results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
