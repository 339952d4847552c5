// README: Status transition table tests.
package appointment

import "testing"

func TestCanTransition_Allowed(t *testing.T) {
	allowed := [][2]Status{
		{StatusPending, StatusConfirmed},
		{StatusPending, StatusNegotiating},
		{StatusPending, StatusCancelled},
		{StatusNegotiating, StatusConfirmed},
		{StatusNegotiating, StatusCancelled},
		{StatusConfirmed, StatusCompleted},
		{StatusConfirmed, StatusCancelled},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("%s -> %s should be allowed", pair[0], pair[1])
		}
	}
}

func TestCanTransition_Rejected(t *testing.T) {
	rejected := [][2]Status{
		{StatusPending, StatusCompleted},
		{StatusConfirmed, StatusPending},
		{StatusCompleted, StatusConfirmed},
		{StatusCancelled, StatusPending},
		{StatusCancelled, StatusCancelled},
	}
	for _, pair := range rejected {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("%s -> %s should be rejected", pair[0], pair[1])
		}
	}
}

// Terminal states must have no outgoing transitions at all.
func TestCanTransition_TerminalStates(t *testing.T) {
	all := []Status{StatusPending, StatusNegotiating, StatusConfirmed, StatusCompleted, StatusCancelled}
	for _, terminal := range []Status{StatusCompleted, StatusCancelled} {
		for _, to := range all {
			if CanTransition(terminal, to) {
				t.Errorf("terminal %s must not transition to %s", terminal, to)
			}
		}
	}
}
