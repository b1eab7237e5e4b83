package entities

import (
	"testing"
	"time"
)

func TestQuoteStatusCanTransitionTo(t *testing.T) {
	all := []QuoteStatus{
		QuoteStatusPending, QuoteStatusResponded, QuoteStatusNegotiation,
		QuoteStatusWaitingCustomer, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired,
	}
	allowed := map[QuoteStatus][]QuoteStatus{
		QuoteStatusPending:         {QuoteStatusResponded, QuoteStatusWaitingCustomer, QuoteStatusRejected, QuoteStatusExpired},
		QuoteStatusResponded:       {QuoteStatusNegotiation, QuoteStatusWaitingCustomer, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired},
		QuoteStatusNegotiation:     {QuoteStatusWaitingCustomer, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired},
		QuoteStatusWaitingCustomer: {QuoteStatusNegotiation, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired},
		QuoteStatusAccepted:        {},
		QuoteStatusRejected:        {},
		QuoteStatusExpired:         {},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			if got := from.CanTransitionTo(to); got != want {
				t.Fatalf("%s -> %s: got %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestQuoteStatusTerminal(t *testing.T) {
	terminal := map[QuoteStatus]bool{
		QuoteStatusPending:         false,
		QuoteStatusResponded:       false,
		QuoteStatusNegotiation:     false,
		QuoteStatusWaitingCustomer: false,
		QuoteStatusAccepted:        true,
		QuoteStatusRejected:        true,
		QuoteStatusExpired:         true,
	}
	for s, want := range terminal {
		if got := s.IsTerminal(); got != want {
			t.Fatalf("%s terminal: got %v, want %v", s, got, want)
		}
	}
}

func TestQuoteAppendMessage(t *testing.T) {
	now := time.Now().UTC()
	q := Quote{Status: QuoteStatusNegotiation}
	q.AppendMessage(Actor{ID: "cust-1", Role: RoleCustomer}, "can you do better on price?", now)

	if len(q.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(q.Messages))
	}
	m := q.Messages[0]
	if m.SenderID != "cust-1" || m.SenderRole != RoleCustomer || m.Text != "can you do better on price?" {
		t.Fatalf("unexpected message: %+v", m)
	}
	if !q.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt %v, got %v", now, q.UpdatedAt)
	}
}
