package usecase

import (
	"errors"
	"testing"

	"storefront/internal/domain/entities"
)

func TestAuthorizeOrderTransition(t *testing.T) {
	admin := entities.Actor{ID: "adm", Role: entities.RoleAdmin}
	customer := entities.Actor{ID: "cust", Role: entities.RoleCustomer}
	fulfillment := entities.Actor{ID: "ff", Role: entities.RoleFulfillment}
	delivery := entities.Actor{ID: "dlv", Role: entities.RoleDelivery}
	accounting := entities.Actor{ID: "acc", Role: entities.RoleAccounting}

	cases := []struct {
		name      string
		actor     entities.Actor
		current   entities.OrderStatus
		requested entities.OrderStatus
		want      error
	}{
		{"admin confirm", admin, entities.OrderStatusPending, entities.OrderStatusConfirmed, nil},
		{"admin cancel from ready", admin, entities.OrderStatusReady, entities.OrderStatusCancelled, nil},
		{"admin cannot use missing edge", admin, entities.OrderStatusPending, entities.OrderStatusCompleted, ErrInvalidTransition},
		{"admin no-op rejected", admin, entities.OrderStatusConfirmed, entities.OrderStatusConfirmed, ErrInvalidTransition},
		{"admin cannot leave terminal", admin, entities.OrderStatusCancelled, entities.OrderStatusPending, ErrInvalidTransition},

		{"customer completes delivery handoff", customer, entities.OrderStatusReady, entities.OrderStatusCompleted, nil},
		{"customer cannot confirm", customer, entities.OrderStatusPending, entities.OrderStatusConfirmed, ErrForbidden},
		{"customer cannot cancel", customer, entities.OrderStatusPending, entities.OrderStatusCancelled, ErrForbidden},
		{"customer invalid edge beats forbidden", customer, entities.OrderStatusCompleted, entities.OrderStatusPending, ErrInvalidTransition},

		{"fulfillment advances", fulfillment, entities.OrderStatusConfirmed, entities.OrderStatusReady, nil},
		{"fulfillment cannot cancel", fulfillment, entities.OrderStatusConfirmed, entities.OrderStatusCancelled, ErrForbidden},
		{"delivery completes", delivery, entities.OrderStatusReady, entities.OrderStatusCompleted, nil},
		{"accounting cannot mutate", accounting, entities.OrderStatusPending, entities.OrderStatusConfirmed, ErrForbidden},

		{"unknown status rejected", admin, entities.OrderStatusPending, entities.OrderStatus("shipped"), ErrInvalidTransition},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := AuthorizeOrderTransition(tc.actor, tc.current, tc.requested)
			if !errors.Is(err, tc.want) && err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAuthorizeQuoteTransition(t *testing.T) {
	admin := entities.Actor{ID: "adm", Role: entities.RoleAdmin}
	customer := entities.Actor{ID: "cust", Role: entities.RoleCustomer}
	fulfillment := entities.Actor{ID: "ff", Role: entities.RoleFulfillment}

	cases := []struct {
		name      string
		actor     entities.Actor
		current   entities.QuoteStatus
		requested entities.QuoteStatus
		want      error
	}{
		{"admin responds", admin, entities.QuoteStatusPending, entities.QuoteStatusResponded, nil},
		{"admin expires", admin, entities.QuoteStatusNegotiation, entities.QuoteStatusExpired, nil},
		{"customer accepts responded", customer, entities.QuoteStatusResponded, entities.QuoteStatusAccepted, nil},
		{"customer rejects responded", customer, entities.QuoteStatusResponded, entities.QuoteStatusRejected, nil},
		{"customer cannot accept pending", customer, entities.QuoteStatusPending, entities.QuoteStatusResponded, ErrForbidden},
		{"customer cannot accept during negotiation", customer, entities.QuoteStatusNegotiation, entities.QuoteStatusAccepted, ErrForbidden},
		{"terminal has no edges", admin, entities.QuoteStatusAccepted, entities.QuoteStatusRejected, ErrInvalidTransition},
		{"fulfillment lacks quote capability", fulfillment, entities.QuoteStatusPending, entities.QuoteStatusResponded, ErrForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := AuthorizeQuoteTransition(tc.actor, tc.current, tc.requested)
			if !errors.Is(err, tc.want) && err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestAuthorizeQuoteMessage(t *testing.T) {
	customer := entities.Actor{ID: "cust", Role: entities.RoleCustomer}

	if err := AuthorizeQuoteMessage(customer, entities.QuoteStatusNegotiation); err != nil {
		t.Fatalf("customer should message during negotiation: %v", err)
	}
	if err := AuthorizeQuoteMessage(customer, entities.QuoteStatusWaitingCustomer); err != nil {
		t.Fatalf("customer should message while waiting: %v", err)
	}
	if err := AuthorizeQuoteMessage(customer, entities.QuoteStatusPending); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if err := AuthorizeQuoteMessage(entities.Actor{ID: "adm", Role: entities.RoleAdmin}, entities.QuoteStatusPending); err != nil {
		t.Fatalf("admin should always message: %v", err)
	}
}
