package entities

import "time"

// OrderStatus represents the lifecycle state of an order.
//
// The transition graph is closed: every admissible edge is listed in
// CanTransitionTo and everything else (including no-op requests) is invalid.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the edge (s, target) exists in the order
// transition table. A no-op (s == target) is never an edge.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return target == OrderStatusConfirmed || target == OrderStatusCancelled
	case OrderStatusConfirmed:
		return target == OrderStatusReady || target == OrderStatusCancelled
	case OrderStatusReady:
		return target == OrderStatusCompleted || target == OrderStatusCancelled
	case OrderStatusCompleted, OrderStatusCancelled:
		return false // terminal
	}
	return false
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// HasInboundEdge reports whether any state can transition into s. The initial
// state has no inbound edges, which lets retry detection distinguish "order
// was just created" from "this transition already committed".
func (s OrderStatus) HasInboundEdge() bool {
	for _, from := range []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled} {
		if from.CanTransitionTo(s) {
			return true
		}
	}
	return false
}

// PaymentState is the payment axis of an order. It is orthogonal to
// OrderStatus: marking an order paid never advances its lifecycle state.

type PaymentState string

const (
	PaymentStatePending  PaymentState = "pending"
	PaymentStatePaid     PaymentState = "paid"
	PaymentStateFailed   PaymentState = "failed"
	PaymentStateRefunded PaymentState = "refunded"
)

func (s PaymentState) IsValid() bool {
	switch s {
	case PaymentStatePending, PaymentStatePaid, PaymentStateFailed, PaymentStateRefunded:
		return true
	}
	return false
}

func (s PaymentState) String() string {
	return string(s)
}

func (s PaymentState) CanTransitionTo(target PaymentState) bool {
	switch s {
	case PaymentStatePending:
		return target == PaymentStatePaid || target == PaymentStateFailed
	case PaymentStatePaid:
		return target == PaymentStateRefunded
	case PaymentStateFailed, PaymentStateRefunded:
		return false // terminal
	}
	return false
}

// PaymentMethod tags how the order is settled.

type PaymentMethod string

const (
	PaymentMethodGateway        PaymentMethod = "gateway"
	PaymentMethodCashOnDelivery PaymentMethod = "cash_on_delivery"
)

func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodGateway || m == PaymentMethodCashOnDelivery
}

// OrderItem is an ordered line item. Amounts are currency-neutral numbers;
// gateway currency conversion happens only inside the checkout coordinator.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

// Address is the delivery address snapshot captured at checkout.
type Address struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// StatusHistoryEntry is an immutable record of a lifecycle transition.
type StatusHistoryEntry struct {
	Status    OrderStatus `json:"status"`
	ActorID   string      `json:"actor_id"`
	ActorRole Role        `json:"actor_role"`
	Note      string      `json:"note,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// PaymentHistoryEntry is an immutable record of a payment-state change.
type PaymentHistoryEntry struct {
	State     PaymentState  `json:"state"`
	Method    PaymentMethod `json:"method"`
	ActorID   string        `json:"actor_id"`
	ActorRole Role          `json:"actor_role"`
	Note      string        `json:"note,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Order is the order aggregate persisted canonically in the orders table and,
// for pre-migration records, embedded in the owning user's document.
//
// Invariants:
//   - the last StatusHistory entry always matches Status
//   - the last PaymentHistory entry always matches PaymentState
//   - history entries are never mutated or removed
//
// Version is the optimistic-concurrency token; every canonical write is
// conditional on it.
type Order struct {
	ID                string                `json:"id"`
	CustomerID        string                `json:"customer_id"`
	CustomerEmail     string                `json:"customer_email"`
	Items             []OrderItem           `json:"items"`
	TotalAmount       float64               `json:"total_amount"`
	Status            OrderStatus           `json:"status"`
	PaymentState      PaymentState          `json:"payment_state"`
	PaymentMethod     PaymentMethod         `json:"payment_method"`
	CheckoutSessionID string                `json:"checkout_session_id,omitempty"`
	ShippingAddress   Address               `json:"shipping_address"`
	StatusHistory     []StatusHistoryEntry  `json:"status_history"`
	PaymentHistory    []PaymentHistoryEntry `json:"payment_history"`
	Version           int64                 `json:"version"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// LastStatusEntry returns the most recent status history entry, if any.
func (o Order) LastStatusEntry() (StatusHistoryEntry, bool) {
	if len(o.StatusHistory) == 0 {
		return StatusHistoryEntry{}, false
	}
	return o.StatusHistory[len(o.StatusHistory)-1], true
}

// LastPaymentEntry returns the most recent payment history entry, if any.
func (o Order) LastPaymentEntry() (PaymentHistoryEntry, bool) {
	if len(o.PaymentHistory) == 0 {
		return PaymentHistoryEntry{}, false
	}
	return o.PaymentHistory[len(o.PaymentHistory)-1], true
}

// AppendStatus records a lifecycle transition. Callers must have validated the
// edge; this only keeps the history invariant intact.
func (o *Order) AppendStatus(status OrderStatus, actor Actor, note string, at time.Time) {
	o.Status = status
	o.StatusHistory = append(o.StatusHistory, StatusHistoryEntry{
		Status:    status,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Note:      note,
		Timestamp: at,
	})
	o.UpdatedAt = at
}

// AppendPayment records a payment-state change without touching Status.
func (o *Order) AppendPayment(state PaymentState, actor Actor, note string, at time.Time) {
	o.PaymentState = state
	o.PaymentHistory = append(o.PaymentHistory, PaymentHistoryEntry{
		State:     state,
		Method:    o.PaymentMethod,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Note:      note,
		Timestamp: at,
	})
	o.UpdatedAt = at
}
