// README: Intent sum type produced by the classifier.
package ai

import "errors"

// ErrClassification marks classifier output that could not be decoded
// into any Intent variant. Callers degrade to a canned chat reply; the
// error never reaches the end user.
var ErrClassification = errors.New("unparsable classifier output")

type IntentKind string

const (
	IntentSearch         IntentKind = "search"
	IntentNavigate       IntentKind = "navigate"
	IntentCreateReminder IntentKind = "create_reminder"
	IntentChat           IntentKind = "chat"
)

// Kinds enumerates every intent variant. Dispatch exhaustiveness tests
// range over it, so a new variant without a handler fails loudly.
var Kinds = []IntentKind{IntentSearch, IntentNavigate, IntentCreateReminder, IntentChat}

// Intent is a tagged union: exactly the payload field matching Kind is
// set, everything else is nil. The decoder guarantees this shape.
type Intent struct {
	Kind     IntentKind
	Search   *SearchParams
	Navigate *NavigateParams
	Reminder *ReminderParams

	// Reply holds the chat text for IntentChat.
	Reply string
}

// SearchParams are listing-filter slots. A nil/empty field imposes no
// constraint.
type SearchParams struct {
	Location  string   `json:"location"`
	MaxPrice  *float64 `json:"maxPrice"`
	RoomType  string   `json:"roomType"`
	Amenities []string `json:"amenities"`
}

// NavigateParams carry the resolved in-app route. The dispatcher
// re-validates Path against NavigationPaths before echoing it.
type NavigateParams struct {
	Path  string
	Label string
	Reply string
}

type ReminderParams struct {
	Title      string `json:"title"`
	Time       string `json:"time"`
	Recurrence string `json:"recurrence"`
	Reply      string `json:"reply"`
}

const (
	RecurrenceWeekly  = "WEEKLY"
	RecurrenceMonthly = "MONTHLY"
)
