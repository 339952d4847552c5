// README: Reminder record created by the assistant.
package reminder

import (
	"time"

	"roost/internal/types"
)

const (
	StatusPending = "pending"

	RecurrenceWeekly  = "WEEKLY"
	RecurrenceMonthly = "MONTHLY"
)

// Reminder is written exactly once per successful create_reminder
// dispatch; there is no update or delete path.
type Reminder struct {
	ID     types.ID `json:"id"`
	UserID types.ID `json:"userId"`
	Title  string   `json:"title"`
	// RemindTime keeps the classifier's textual form (e.g. 20260501T0900).
	RemindTime string `json:"remindTime"`
	// Recurrence is WEEKLY, MONTHLY, or empty for one-off.
	Recurrence string    `json:"recurrence"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
