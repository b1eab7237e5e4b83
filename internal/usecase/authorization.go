package usecase

import (
	"errors"

	"storefront/internal/domain/entities"
)

var (
	// ErrUnauthenticated: no verified actor on the request.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden: the edge exists but this actor may not use it.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTransition: the edge does not exist at all, no-ops included.
	ErrInvalidTransition = errors.New("invalid transition")
)

// AuthorizeOrderTransition decides whether actor may move an order along the
// edge (current, requested).
//
// Edge existence is checked first so callers can distinguish "this is never a
// valid move" (ErrInvalidTransition) from "you may not make this move"
// (ErrForbidden).
func AuthorizeOrderTransition(actor entities.Actor, current, requested entities.OrderStatus) error {
	if !requested.IsValid() || !current.CanTransitionTo(requested) {
		return ErrInvalidTransition
	}

	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RoleCustomer:
		// Customers may only complete their own delivery handoff.
		if current == entities.OrderStatusReady && requested == entities.OrderStatusCompleted {
			return nil
		}
		return ErrForbidden
	default:
		if !actor.Role.HasCapability(entities.CapUpdateOrders) {
			return ErrForbidden
		}
		// Operational roles advance fulfillment; cancellation stays with admin.
		if requested == entities.OrderStatusCancelled {
			return ErrForbidden
		}
		return nil
	}
}

// AuthorizeQuoteTransition decides whether actor may move a quotation along
// the edge (current, requested).
func AuthorizeQuoteTransition(actor entities.Actor, current, requested entities.QuoteStatus) error {
	if !requested.IsValid() || !current.CanTransitionTo(requested) {
		return ErrInvalidTransition
	}

	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RoleCustomer:
		// Customers accept or reject only a quote that has been responded to.
		if current == entities.QuoteStatusResponded &&
			(requested == entities.QuoteStatusAccepted || requested == entities.QuoteStatusRejected) {
			return nil
		}
		return ErrForbidden
	default:
		if !actor.Role.HasCapability(entities.CapManageQuotes) {
			return ErrForbidden
		}
		return nil
	}
}

// AuthorizeQuoteMessage decides whether actor may append to the negotiation
// thread of a quote currently in state current. Terminal quotes are handled
// by the caller before the gate is consulted.
func AuthorizeQuoteMessage(actor entities.Actor, current entities.QuoteStatus) error {
	switch actor.Role {
	case entities.RoleAdmin:
		return nil
	case entities.RoleCustomer:
		if current == entities.QuoteStatusNegotiation || current == entities.QuoteStatusWaitingCustomer {
			return nil
		}
		return ErrForbidden
	default:
		if !actor.Role.HasCapability(entities.CapManageQuotes) {
			return ErrForbidden
		}
		return nil
	}
}
