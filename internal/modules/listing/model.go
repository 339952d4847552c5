// README: Listing aggregate, amenity catalog, and module errors.
package listing

import (
	"errors"
	"time"

	"roost/internal/types"
)

var (
	ErrNotFound   = errors.New("listing not found")
	ErrBadRequest = errors.New("bad request")
)

type Listing struct {
	ID          types.ID  `json:"id"`
	LandlordID  types.ID  `json:"landlordId"`
	Title       string    `json:"title"`
	Address     string    `json:"address"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Deposit     float64   `json:"deposit"`
	Floor       int       `json:"floor"`
	Area        float64   `json:"area"`
	Rooms       int       `json:"rooms"`
	Amenities   []string  `json:"amenities"`
	Description string    `json:"description"`
	Images      []string  `json:"images"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Amenities is the fixed tag vocabulary shown in the landlord form and
// accepted from the classifier.
var Amenities = []string{
	"Wi-Fi", "電視", "冰箱", "冷氣", "洗衣機",
	"熱水器", "床", "衣櫃", "沙發", "桌椅",
	"陽台", "電梯", "車位", "可養寵物", "可開伙",
}
