package request

import (
	"testing"

	"storefront/internal/domain/entities"
)

func TestCreateOrderRequest_ToItems(t *testing.T) {
	r := CreateOrderRequest{Items: []OrderItemRequest{
		{ProductID: " p-1 ", ProductName: " Widget ", Quantity: 2, UnitPrice: 10},
		{ProductID: "p-2", Quantity: 1, UnitPrice: 0.5},
	}}

	items := r.ToItems()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ProductID != "p-1" || items[0].ProductName != "Widget" {
		t.Fatalf("expected trimmed fields, got %+v", items[0])
	}
	if items[0].Amount != 20 {
		t.Fatalf("expected amount 20, got %v", items[0].Amount)
	}
	if items[1].Amount != 0.5 {
		t.Fatalf("expected amount 0.5, got %v", items[1].Amount)
	}
}

func TestOrderTransitionRequest_ResolveStatus(t *testing.T) {
	r := OrderTransitionRequest{Status: " Confirmed "}
	status, ok := r.ResolveStatus()
	if !ok || status != entities.OrderStatusConfirmed {
		t.Fatalf("expected confirmed, got %q ok=%v", status, ok)
	}

	r2 := OrderTransitionRequest{Status: "teleported"}
	if _, ok := r2.ResolveStatus(); ok {
		t.Fatalf("expected unknown status to be rejected")
	}
}

func TestSessionOutcomeRequest_ResolveOutcome(t *testing.T) {
	r := SessionOutcomeRequest{Outcome: " SUCCESS "}
	outcome, ok := r.ResolveOutcome()
	if !ok || outcome != entities.SessionOutcomeSuccess {
		t.Fatalf("expected success, got %q ok=%v", outcome, ok)
	}

	r2 := SessionOutcomeRequest{Outcome: "maybe"}
	if _, ok := r2.ResolveOutcome(); ok {
		t.Fatalf("expected unknown outcome to be rejected")
	}
}

func TestQuoteTransitionRequest_ResolveStatus(t *testing.T) {
	r := QuoteTransitionRequest{Status: "accepted"}
	status, ok := r.ResolveStatus()
	if !ok || status != entities.QuoteStatusAccepted {
		t.Fatalf("expected accepted, got %q ok=%v", status, ok)
	}

	r2 := QuoteTransitionRequest{Status: ""}
	if _, ok := r2.ResolveStatus(); ok {
		t.Fatalf("expected empty status to be rejected")
	}
}
