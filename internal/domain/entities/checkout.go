package entities

// SessionLineItem is a gateway-currency-denominated line sent to the checkout
// provider. UnitPrice is already converted; nothing in here flows back into
// the order's stored amounts.
type SessionLineItem struct {
	ID        string
	Title     string
	Quantity  int
	UnitPrice float64
}

// CheckoutSessionRequest is the provider-neutral input for creating a hosted
// checkout session. Metadata carries the order id round-trip so the outcome
// can be reconciled back to exactly one order.
type CheckoutSessionRequest struct {
	OrderID    string
	Items      []SessionLineItem
	SuccessURL string
	CancelURL  string
	Metadata   map[string]any
}

// CheckoutSession is the handle returned by the gateway.
type CheckoutSession struct {
	SessionID   string
	RedirectURL string
}

// SessionOutcome values reported back by the gateway return callback.

type SessionOutcome string

const (
	SessionOutcomeSuccess SessionOutcome = "success"
	SessionOutcomeFailure SessionOutcome = "failure"
)

func (o SessionOutcome) IsValid() bool {
	return o == SessionOutcomeSuccess || o == SessionOutcomeFailure
}
