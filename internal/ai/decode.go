// README: Strict decoding of raw classifier output into the Intent union.
package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// rawIntent mirrors the JSON envelope the model is instructed to emit.
type rawIntent struct {
	Type   string          `json:"type"`
	Reply  string          `json:"reply"`
	Path   string          `json:"path"`
	Label  string          `json:"label"`
	Params json.RawMessage `json:"params"`
}

// DecodeIntent validates raw model output against the four-variant
// schema. Anything that does not decode cleanly is an ErrClassification;
// the caller must not trust any field of a rejected payload.
func DecodeIntent(raw string) (*Intent, error) {
	cleaned := cleanJSONString(raw)

	// Models occasionally emit truncated or mis-quoted JSON even in JSON
	// mode; repair before giving up.
	if repaired, err := jsonrepair.JSONRepair(cleaned); err == nil {
		cleaned = repaired
	}

	var r rawIntent
	if err := json.Unmarshal([]byte(cleaned), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClassification, err)
	}

	switch IntentKind(r.Type) {
	case IntentSearch:
		if !hasObject(r.Params) {
			return nil, fmt.Errorf("%w: search intent without params", ErrClassification)
		}
		var p SearchParams
		if err := json.Unmarshal(r.Params, &p); err != nil {
			return nil, fmt.Errorf("%w: bad search params: %v", ErrClassification, err)
		}
		return &Intent{Kind: IntentSearch, Search: &p}, nil

	case IntentNavigate:
		if r.Path == "" || r.Label == "" {
			return nil, fmt.Errorf("%w: navigate intent missing path or label", ErrClassification)
		}
		return &Intent{Kind: IntentNavigate, Navigate: &NavigateParams{
			Path:  r.Path,
			Label: r.Label,
			Reply: r.Reply,
		}}, nil

	case IntentCreateReminder:
		if !hasObject(r.Params) {
			return nil, fmt.Errorf("%w: create_reminder intent without params", ErrClassification)
		}
		var p ReminderParams
		if err := json.Unmarshal(r.Params, &p); err != nil {
			return nil, fmt.Errorf("%w: bad reminder params: %v", ErrClassification, err)
		}
		if p.Title == "" || p.Time == "" {
			return nil, fmt.Errorf("%w: reminder params missing title or time", ErrClassification)
		}
		p.Recurrence = normalizeRecurrence(p.Recurrence)
		return &Intent{Kind: IntentCreateReminder, Reminder: &p}, nil

	case IntentChat:
		if r.Reply == "" {
			return nil, fmt.Errorf("%w: chat intent without reply", ErrClassification)
		}
		return &Intent{Kind: IntentChat, Reply: r.Reply}, nil

	default:
		return nil, fmt.Errorf("%w: unknown intent type %q", ErrClassification, r.Type)
	}
}

// normalizeRecurrence collapses anything outside the two supported
// frequencies (including the literal "null" some models emit) to none.
func normalizeRecurrence(v string) string {
	switch strings.ToUpper(strings.TrimSpace(v)) {
	case RecurrenceWeekly:
		return RecurrenceWeekly
	case RecurrenceMonthly:
		return RecurrenceMonthly
	default:
		return ""
	}
}

func hasObject(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s != "" && s != "null"
}

// cleanJSONString removes markdown code fences if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
