package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

// CreateSessionRequest starts a hosted checkout. Either OrderID points at an
// existing gateway order awaiting payment, or Items carries the cart to
// create one from.
type CreateSessionRequest struct {
	OrderID         string             `json:"order_id"`
	Items           []OrderItemRequest `json:"items"`
	CustomerEmail   string             `json:"customer_email"`
	ShippingAddress AddressRequest     `json:"shipping_address"`
	SuccessURL      string             `json:"success_url"`
	CancelURL       string             `json:"cancel_url"`
}

// SessionOutcomeRequest is the gateway return-callback payload.
type SessionOutcomeRequest struct {
	OrderID   string `json:"order_id" binding:"required"`
	SessionID string `json:"session_id"`
	Outcome   string `json:"outcome" binding:"required"`
}

func (r SessionOutcomeRequest) ResolveOutcome() (entities.SessionOutcome, bool) {
	o := entities.SessionOutcome(strings.ToLower(strings.TrimSpace(r.Outcome)))
	return o, o.IsValid()
}
