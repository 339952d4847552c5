// README: Decoder contract tests covering all four variants and the failure mode.
package ai

import (
	"errors"
	"testing"
)

func TestDecodeIntent_Search(t *testing.T) {
	raw := `{"type":"search","params":{"location":"斗六","maxPrice":3000,"roomType":"套房","amenities":["Wi-Fi","冷氣"]}}`
	in, err := DecodeIntent(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Kind != IntentSearch || in.Search == nil {
		t.Fatalf("expected search variant, got %+v", in)
	}
	if in.Search.Location != "斗六" {
		t.Errorf("location: got %q", in.Search.Location)
	}
	if in.Search.MaxPrice == nil || *in.Search.MaxPrice != 3000 {
		t.Errorf("maxPrice: got %v", in.Search.MaxPrice)
	}
	if in.Search.RoomType != "套房" {
		t.Errorf("roomType: got %q", in.Search.RoomType)
	}
	if len(in.Search.Amenities) != 2 {
		t.Errorf("amenities: got %v", in.Search.Amenities)
	}
}

func TestDecodeIntent_SearchNullSlots(t *testing.T) {
	raw := `{"type":"search","params":{"location":"虎尾","maxPrice":null,"roomType":null,"amenities":[]}}`
	in, err := DecodeIntent(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Search.MaxPrice != nil {
		t.Errorf("null maxPrice should decode to nil, got %v", *in.Search.MaxPrice)
	}
	if in.Search.RoomType != "" {
		t.Errorf("null roomType should decode to empty, got %q", in.Search.RoomType)
	}
}

func TestDecodeIntent_SearchWithoutParams(t *testing.T) {
	for _, raw := range []string{
		`{"type":"search"}`,
		`{"type":"search","params":null}`,
	} {
		if _, err := DecodeIntent(raw); !errors.Is(err, ErrClassification) {
			t.Errorf("raw %s: expected ErrClassification, got %v", raw, err)
		}
	}
}

func TestDecodeIntent_Navigate(t *testing.T) {
	raw := `{"type":"navigate","path":"/TenantHome/favorites","label":"我的收藏","reply":"帶您前往收藏頁面！"}`
	in, err := DecodeIntent(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Kind != IntentNavigate || in.Navigate == nil {
		t.Fatalf("expected navigate variant, got %+v", in)
	}
	if in.Navigate.Path != "/TenantHome/favorites" || in.Navigate.Label != "我的收藏" {
		t.Errorf("path/label: got %q %q", in.Navigate.Path, in.Navigate.Label)
	}
}

func TestDecodeIntent_NavigateMissingPath(t *testing.T) {
	raw := `{"type":"navigate","label":"我的收藏","reply":"..."}`
	if _, err := DecodeIntent(raw); !errors.Is(err, ErrClassification) {
		t.Fatalf("expected ErrClassification, got %v", err)
	}
}

func TestDecodeIntent_Reminder(t *testing.T) {
	raw := `{"type":"create_reminder","params":{"title":"繳房租","time":"20260901T0900","recurrence":"MONTHLY","reply":"好的，已設定提醒！"}}`
	in, err := DecodeIntent(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Kind != IntentCreateReminder || in.Reminder == nil {
		t.Fatalf("expected reminder variant, got %+v", in)
	}
	if in.Reminder.Recurrence != RecurrenceMonthly {
		t.Errorf("recurrence: got %q", in.Reminder.Recurrence)
	}
}

// Models sometimes send the literal string "null" for no recurrence;
// it must collapse to empty, not survive as a bogus frequency.
func TestDecodeIntent_ReminderRecurrenceNormalized(t *testing.T) {
	cases := map[string]string{
		"weekly":  RecurrenceWeekly,
		"MONTHLY": RecurrenceMonthly,
		"null":    "",
		"每天":      "",
		"":        "",
	}
	for in, want := range cases {
		raw := `{"type":"create_reminder","params":{"title":"繳水電","time":"20260901T0900","recurrence":"` + in + `","reply":"ok"}}`
		decoded, err := DecodeIntent(raw)
		if err != nil {
			t.Fatalf("recurrence %q: unexpected error: %v", in, err)
		}
		if decoded.Reminder.Recurrence != want {
			t.Errorf("recurrence %q: got %q, want %q", in, decoded.Reminder.Recurrence, want)
		}
	}
}

func TestDecodeIntent_ReminderMissingFields(t *testing.T) {
	raw := `{"type":"create_reminder","params":{"recurrence":"WEEKLY","reply":"ok"}}`
	if _, err := DecodeIntent(raw); !errors.Is(err, ErrClassification) {
		t.Fatalf("expected ErrClassification, got %v", err)
	}
}

func TestDecodeIntent_Chat(t *testing.T) {
	in, err := DecodeIntent(`{"type":"chat","reply":"哈囉！需要幫忙找房嗎？"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Kind != IntentChat || in.Reply == "" {
		t.Fatalf("expected chat variant with reply, got %+v", in)
	}
}

func TestDecodeIntent_MarkdownFences(t *testing.T) {
	raw := "```json\n{\"type\":\"chat\",\"reply\":\"hi\"}\n```"
	in, err := DecodeIntent(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Kind != IntentChat {
		t.Fatalf("expected chat, got %s", in.Kind)
	}
}

// Trailing commas and single quotes show up in the wild; the repair
// pass should rescue them.
func TestDecodeIntent_RepairsSloppyJSON(t *testing.T) {
	raw := `{"type":"chat","reply":"hi",}`
	in, err := DecodeIntent(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Reply != "hi" {
		t.Fatalf("reply: got %q", in.Reply)
	}
}

func TestDecodeIntent_Garbage(t *testing.T) {
	for _, raw := range []string{
		"抱歉我無法回答",
		`{"type":"booking","reply":"?"}`,
		`{"reply":"no type"}`,
		`{"type":"chat"}`,
		"",
	} {
		if _, err := DecodeIntent(raw); !errors.Is(err, ErrClassification) {
			t.Errorf("raw %q: expected ErrClassification, got %v", raw, err)
		}
	}
}

func TestValidNavigationPath(t *testing.T) {
	if !ValidNavigationPath("/TenantHome/favorites") {
		t.Error("table path rejected")
	}
	if ValidNavigationPath("/Admin/secret") {
		t.Error("foreign path accepted")
	}
}
