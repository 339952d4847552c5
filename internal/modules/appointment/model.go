// README: Viewing-appointment aggregate and status definitions.
package appointment

import (
	"errors"
	"time"

	"roost/internal/types"
)

var (
	ErrNotFound     = errors.New("appointment not found")
	ErrBadRequest   = errors.New("bad request")
	ErrInvalidState = errors.New("invalid status transition")
)

type Status string

const (
	StatusPending     Status = "pending"
	StatusNegotiating Status = "negotiating"
	StatusConfirmed   Status = "confirmed"
	StatusCompleted   Status = "completed"
	StatusCancelled   Status = "cancelled"
)

type Appointment struct {
	ID         types.ID  `json:"id"`
	ListingID  types.ID  `json:"rentalId"`
	TenantID   types.ID  `json:"tenantId"`
	LandlordID types.ID  `json:"landlordId"`
	Status     Status    `json:"status"`
	ViewTime   time.Time `json:"viewTime"`
	Messages   []Message `json:"messages"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Message is one entry in the tenant/landlord coordination thread.
type Message struct {
	Author    types.ID  `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}

// AllowedTransitions represents the appointment state flow as code.
var AllowedTransitions = map[Status][]Status{
	StatusPending:     {StatusConfirmed, StatusNegotiating, StatusCancelled},
	StatusNegotiating: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:   {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
