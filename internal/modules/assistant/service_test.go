// README: Dispatcher tests with stubbed classifier and collaborators.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"roost/internal/ai"
	"roost/internal/modules/listing"
	"roost/internal/modules/reminder"
)

// stubClassifier returns a fixed intent or error; the dispatcher must
// treat classification as a black box.
type stubClassifier struct {
	intent *ai.Intent
	err    error
}

func (s *stubClassifier) Classify(_ context.Context, _ string, _ time.Time) (*ai.Intent, error) {
	return s.intent, s.err
}

type stubListings struct {
	listings []listing.Listing
	err      error
}

func (s *stubListings) ListPublished(_ context.Context) ([]listing.Listing, error) {
	return s.listings, s.err
}

type stubSink struct {
	got *reminder.CreateCommand
	err error
}

func (s *stubSink) Create(_ context.Context, cmd reminder.CreateCommand) error {
	s.got = &cmd
	return s.err
}

func newService(c ai.Classifier, l ListingSource, r ReminderSink) *Service {
	if l == nil {
		l = &stubListings{}
	}
	if r == nil {
		r = &stubSink{}
	}
	return NewService(c, l, r)
}

func respond(t *testing.T, s *Service) Envelope {
	t.Helper()
	env, err := s.Respond(context.Background(), "user1", "訊息", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return env
}

func ptr(f float64) *float64 { return &f }

// ---------------------------------------------------------------------------
// Search dispatch
// ---------------------------------------------------------------------------

func searchIntent(p ai.SearchParams) *ai.Intent {
	return &ai.Intent{Kind: ai.IntentSearch, Search: &p}
}

func TestRespond_SearchEndToEnd(t *testing.T) {
	// "幫我找斗六三千元以下的套房"
	c := &stubClassifier{intent: searchIntent(ai.SearchParams{
		Location: "斗六", MaxPrice: ptr(3000), RoomType: "套房",
	})}
	l := &stubListings{listings: []listing.Listing{
		{Title: "斗六套房A", Price: 2800, Type: "套房", IsPublished: true},
		{Title: "虎尾雅房", Price: 2500, Type: "雅房", IsPublished: true},
	}}

	env := respond(t, newService(c, l, nil))
	if env.Type != TypeRecommendation {
		t.Fatalf("type: got %q", env.Type)
	}
	if len(env.Data) != 1 || env.Data[0].Title != "斗六套房A" {
		t.Fatalf("data: got %+v", env.Data)
	}
}

func TestRespond_SearchNoMatches(t *testing.T) {
	c := &stubClassifier{intent: searchIntent(ai.SearchParams{Location: "台北"})}
	l := &stubListings{listings: []listing.Listing{{Title: "斗六套房A"}}}

	env := respond(t, newService(c, l, nil))
	if env.Type != TypeText {
		t.Fatalf("type: got %q", env.Type)
	}
	if env.Data != nil {
		t.Fatalf("no-match envelope must carry no data, got %+v", env.Data)
	}
	if env.Text == "" {
		t.Fatal("text must always be present")
	}
}

func TestRespond_SearchCapsAtThree(t *testing.T) {
	var ls []listing.Listing
	for i := 0; i < 7; i++ {
		ls = append(ls, listing.Listing{Title: fmt.Sprintf("斗六套房%d", i)})
	}
	c := &stubClassifier{intent: searchIntent(ai.SearchParams{Location: "斗六"})}

	env := respond(t, newService(c, &stubListings{listings: ls}, nil))
	if len(env.Data) != 3 {
		t.Fatalf("expected 3 results, got %d", len(env.Data))
	}
	// Store's natural order, no re-ranking.
	if env.Data[0].Title != "斗六套房0" || env.Data[2].Title != "斗六套房2" {
		t.Fatalf("order not preserved: %+v", env.Data)
	}
}

func TestRespond_ListingStoreFailure(t *testing.T) {
	c := &stubClassifier{intent: searchIntent(ai.SearchParams{})}
	l := &stubListings{err: errors.New("connection refused")}

	_, err := newService(c, l, nil).Respond(context.Background(), "", "找房", time.Now())
	if err == nil {
		t.Fatal("store failure must propagate")
	}
}

// ---------------------------------------------------------------------------
// Navigate dispatch
// ---------------------------------------------------------------------------

func TestRespond_NavigateEndToEnd(t *testing.T) {
	// "我的收藏在哪裡"
	c := &stubClassifier{intent: &ai.Intent{Kind: ai.IntentNavigate, Navigate: &ai.NavigateParams{
		Path: "/TenantHome/favorites", Label: "我的收藏", Reply: "帶您前往收藏頁面！",
	}}}

	env := respond(t, newService(c, nil, nil))
	if env.Type != TypeNavigate {
		t.Fatalf("type: got %q", env.Type)
	}
	if env.Path != "/TenantHome/favorites" || env.Label != "我的收藏" {
		t.Fatalf("path/label not echoed: %+v", env)
	}
	if env.Text != "帶您前往收藏頁面！" {
		t.Fatalf("text: got %q", env.Text)
	}
}

func TestRespond_NavigateUnknownPathDegrades(t *testing.T) {
	c := &stubClassifier{intent: &ai.Intent{Kind: ai.IntentNavigate, Navigate: &ai.NavigateParams{
		Path: "/Admin/kaboom", Label: "我的收藏", Reply: "走吧",
	}}}

	env := respond(t, newService(c, nil, nil))
	if env.Type != TypeChat {
		t.Fatalf("hallucinated path must degrade to chat, got %q", env.Type)
	}
	if env.Path != "" {
		t.Fatalf("path must not leak: %q", env.Path)
	}
}

// ---------------------------------------------------------------------------
// Reminder dispatch
// ---------------------------------------------------------------------------

func reminderIntent() *ai.Intent {
	return &ai.Intent{Kind: ai.IntentCreateReminder, Reminder: &ai.ReminderParams{
		Title: "繳房租", Time: "20260901T0900", Recurrence: "MONTHLY", Reply: "好的，每月都會提醒您！",
	}}
}

func TestRespond_ReminderCreated(t *testing.T) {
	sink := &stubSink{}
	env := respond(t, newService(&stubClassifier{intent: reminderIntent()}, nil, sink))

	if env.Type != TypeChat || env.Text != "好的，每月都會提醒您！" {
		t.Fatalf("envelope: %+v", env)
	}
	if sink.got == nil {
		t.Fatal("sink not called")
	}
	if sink.got.UserID != "user1" || sink.got.Title != "繳房租" || sink.got.Recurrence != "MONTHLY" {
		t.Fatalf("command: %+v", sink.got)
	}
}

func TestRespond_ReminderSinkFailureDegrades(t *testing.T) {
	sink := &stubSink{err: errors.New("insert failed")}
	env := respond(t, newService(&stubClassifier{intent: reminderIntent()}, nil, sink))

	if env.Type != TypeChat {
		t.Fatalf("sink failure must stay conversational, got %q", env.Type)
	}
	if env.Text != "抱歉，設定提醒時發生錯誤，請稍後再試。" {
		t.Fatalf("text: got %q", env.Text)
	}
}

func TestRespond_ReminderWithoutUser(t *testing.T) {
	sink := &stubSink{}
	s := newService(&stubClassifier{intent: reminderIntent()}, nil, sink)
	if _, err := s.Respond(context.Background(), "", "提醒我", time.Now()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.got == nil || sink.got.UserID != "" {
		t.Fatalf("reminder should be written with empty user id, got %+v", sink.got)
	}
}

// ---------------------------------------------------------------------------
// Chat dispatch and failure modes
// ---------------------------------------------------------------------------

func TestRespond_ChatEcho(t *testing.T) {
	c := &stubClassifier{intent: &ai.Intent{Kind: ai.IntentChat, Reply: "哈囉！"}}
	env := respond(t, newService(c, nil, nil))
	if env.Type != TypeChat || env.Text != "哈囉！" {
		t.Fatalf("envelope: %+v", env)
	}
}

func TestRespond_ClassificationFailureFallsBack(t *testing.T) {
	c := &stubClassifier{err: fmt.Errorf("%w: gibberish", ai.ErrClassification)}
	env := respond(t, newService(c, nil, nil))
	if env.Type != TypeChat || env.Text != "抱歉，我現在有點累，請再說一次好嗎？" {
		t.Fatalf("expected fixed fallback, got %+v", env)
	}
}

func TestRespond_ClassifierTransportErrorPropagates(t *testing.T) {
	c := &stubClassifier{err: errors.New("gemini unreachable")}
	_, err := newService(c, nil, nil).Respond(context.Background(), "", "hi", time.Now())
	if err == nil {
		t.Fatal("transport error must propagate")
	}
}

// TestDispatch_Exhaustive walks every declared intent kind through
// dispatch; a kind without a handler surfaces as ErrUnhandledIntent.
func TestDispatch_Exhaustive(t *testing.T) {
	samples := map[ai.IntentKind]*ai.Intent{
		ai.IntentSearch:         searchIntent(ai.SearchParams{}),
		ai.IntentNavigate:       {Kind: ai.IntentNavigate, Navigate: &ai.NavigateParams{Path: "/TenantHome/browse", Label: "列表找房"}},
		ai.IntentCreateReminder: reminderIntent(),
		ai.IntentChat:           {Kind: ai.IntentChat, Reply: "hi"},
	}
	s := newService(&stubClassifier{}, nil, nil)
	for _, kind := range ai.Kinds {
		in, ok := samples[kind]
		if !ok {
			t.Fatalf("no sample intent for kind %q; add one and a handler", kind)
		}
		if _, err := s.dispatch(context.Background(), "user1", in); errors.Is(err, ErrUnhandledIntent) {
			t.Errorf("kind %q has no handler", kind)
		}
	}
}
