// README: Favorite record linking a user to a listing.
package favorite

import (
	"errors"
	"time"

	"roost/internal/types"
)

var (
	ErrNotFound   = errors.New("favorite not found")
	ErrBadRequest = errors.New("bad request")
)

type Favorite struct {
	ID        types.ID  `json:"id"`
	UserID    types.ID  `json:"userId"`
	ListingID types.ID  `json:"rentalId"`
	CreatedAt time.Time `json:"createdAt"`
}
