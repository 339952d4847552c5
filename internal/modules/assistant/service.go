// README: Intent dispatcher; routes classified intents to domain handlers.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"roost/internal/ai"
	"roost/internal/modules/listing"
	"roost/internal/modules/reminder"
	"roost/internal/types"
)

// maxResults caps the listings attached to a recommendation envelope.
const maxResults = 3

// ErrUnhandledIntent means a classified kind reached dispatch without a
// handler. It can only happen when a new variant is added to ai.Kinds;
// the exhaustiveness test catches that before it ships.
var ErrUnhandledIntent = errors.New("intent kind has no handler")

// ListingSource is the listing-store capability the dispatcher consumes:
// the full published set, unfiltered. All filtering happens here, in
// memory, which is fine at current catalog sizes and keeps the predicate
// reusable if filtering ever moves into the store.
type ListingSource interface {
	ListPublished(ctx context.Context) ([]listing.Listing, error)
}

// ReminderSink persists one reminder record.
type ReminderSink interface {
	Create(ctx context.Context, cmd reminder.CreateCommand) error
}

type Service struct {
	classifier ai.Classifier
	listings   ListingSource
	reminders  ReminderSink
}

func NewService(classifier ai.Classifier, listings ListingSource, reminders ReminderSink) *Service {
	return &Service{classifier: classifier, listings: listings, reminders: reminders}
}

// Respond runs one message through classify-then-dispatch. Every
// conversational failure (unparsable classification, reminder write
// error) degrades to a chat envelope with a nil error; only failures
// with no conversational channel (listing store down, classifier
// transport error) return a non-nil error for the HTTP layer to map
// to a 500.
func (s *Service) Respond(ctx context.Context, userID types.ID, message string, now time.Time) (Envelope, error) {
	intent, err := s.classifier.Classify(ctx, message, now)
	if err != nil {
		if errors.Is(err, ai.ErrClassification) {
			log.Printf("assistant: classification failed: %v", err)
			return fallbackEnvelope(), nil
		}
		return Envelope{}, fmt.Errorf("classify: %w", err)
	}
	return s.dispatch(ctx, userID, intent)
}

func (s *Service) dispatch(ctx context.Context, userID types.ID, in *ai.Intent) (Envelope, error) {
	switch in.Kind {
	case ai.IntentSearch:
		return s.handleSearch(ctx, in.Search)
	case ai.IntentNavigate:
		return s.handleNavigate(in.Navigate), nil
	case ai.IntentCreateReminder:
		return s.handleReminder(ctx, userID, in.Reminder), nil
	case ai.IntentChat:
		return Envelope{Type: TypeChat, Text: in.Reply}, nil
	default:
		return Envelope{}, fmt.Errorf("%w: %q", ErrUnhandledIntent, in.Kind)
	}
}

func (s *Service) handleSearch(ctx context.Context, p *ai.SearchParams) (Envelope, error) {
	all, err := s.listings.ListPublished(ctx)
	if err != nil {
		return Envelope{}, fmt.Errorf("listing retrieval: %w", err)
	}

	matched := listing.Apply(all, listing.Filter{
		Location:  p.Location,
		MaxPrice:  p.MaxPrice,
		RoomType:  p.RoomType,
		Amenities: p.Amenities,
	})
	if len(matched) == 0 {
		return Envelope{Type: TypeText, Text: msgNoResults}, nil
	}
	if len(matched) > maxResults {
		matched = matched[:maxResults]
	}
	return Envelope{Type: TypeRecommendation, Text: msgFound, Data: matched}, nil
}

// handleNavigate echoes the classifier's route, but only after checking
// it against the static table; the model is prompted with the table yet
// can still hallucinate, and a made-up path must never reach the client.
func (s *Service) handleNavigate(p *ai.NavigateParams) Envelope {
	if !ai.ValidNavigationPath(p.Path) {
		log.Printf("assistant: classifier proposed unknown path %q", p.Path)
		return fallbackEnvelope()
	}
	return Envelope{Type: TypeNavigate, Text: p.Reply, Path: p.Path, Label: p.Label}
}

// handleReminder writes the record and keeps the conversation going on
// failure: a broken reminder write is an apology, never a 500. userID
// may be empty when the request carried none; the record is written
// anyway (documented weak point).
func (s *Service) handleReminder(ctx context.Context, userID types.ID, p *ai.ReminderParams) Envelope {
	err := s.reminders.Create(ctx, reminder.CreateCommand{
		UserID:     userID,
		Title:      p.Title,
		RemindTime: p.Time,
		Recurrence: p.Recurrence,
	})
	if err != nil {
		log.Printf("assistant: reminder write failed: %v", err)
		return Envelope{Type: TypeChat, Text: msgReminderErr}
	}
	text := p.Reply
	if text == "" {
		text = msgReminderOK
	}
	return Envelope{Type: TypeChat, Text: text}
}
