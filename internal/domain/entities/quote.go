package entities

import "time"

// QuoteStatus represents the lifecycle of a quotation request.

type QuoteStatus string

const (
	QuoteStatusPending         QuoteStatus = "pending"
	QuoteStatusResponded       QuoteStatus = "responded"
	QuoteStatusNegotiation     QuoteStatus = "negotiation"
	QuoteStatusWaitingCustomer QuoteStatus = "waiting_customer"
	QuoteStatusAccepted        QuoteStatus = "accepted"
	QuoteStatusRejected        QuoteStatus = "rejected"
	QuoteStatusExpired         QuoteStatus = "expired"
)

func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusResponded, QuoteStatusNegotiation,
		QuoteStatusWaitingCustomer, QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return true
	}
	return false
}

func (s QuoteStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether the edge (s, target) exists in the quote
// transition table. Terminal states have no outgoing edges.
func (s QuoteStatus) CanTransitionTo(target QuoteStatus) bool {
	switch s {
	case QuoteStatusPending:
		return target == QuoteStatusResponded || target == QuoteStatusWaitingCustomer ||
			target == QuoteStatusRejected || target == QuoteStatusExpired
	case QuoteStatusResponded:
		return target == QuoteStatusNegotiation || target == QuoteStatusWaitingCustomer ||
			target == QuoteStatusAccepted || target == QuoteStatusRejected || target == QuoteStatusExpired
	case QuoteStatusNegotiation:
		return target == QuoteStatusWaitingCustomer ||
			target == QuoteStatusAccepted || target == QuoteStatusRejected || target == QuoteStatusExpired
	case QuoteStatusWaitingCustomer:
		return target == QuoteStatusNegotiation ||
			target == QuoteStatusAccepted || target == QuoteStatusRejected || target == QuoteStatusExpired
	case QuoteStatusAccepted, QuoteStatusRejected, QuoteStatusExpired:
		return false // terminal
	}
	return false
}

func (s QuoteStatus) IsTerminal() bool {
	return s == QuoteStatusAccepted || s == QuoteStatusRejected || s == QuoteStatusExpired
}

// QuoteItem is a requested line item or free-form description entry.
type QuoteItem struct {
	ProductID   string `json:"product_id,omitempty"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

// QuoteMessage is an entry in the append-only negotiation thread.
type QuoteMessage struct {
	SenderID   string    `json:"sender_id"`
	SenderRole Role      `json:"sender_role"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

// Quote is the quotation aggregate persisted in the quotes table.
//
// Invariant: once Status is terminal, neither the status nor the message
// thread may change.
type Quote struct {
	ID             string         `json:"id"`
	RequesterID    string         `json:"requester_id"`
	RequesterEmail string         `json:"requester_email"`
	Description    string         `json:"description"`
	Items          []QuoteItem    `json:"items"`
	AdminResponse  string         `json:"admin_response,omitempty"`
	Status         QuoteStatus    `json:"status"`
	Messages       []QuoteMessage `json:"messages"`
	Version        int64          `json:"version"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// AppendMessage adds a thread entry. Callers must have rejected terminal
// quotes already.
func (q *Quote) AppendMessage(actor Actor, text string, at time.Time) {
	q.Messages = append(q.Messages, QuoteMessage{
		SenderID:   actor.ID,
		SenderRole: actor.Role,
		Text:       text,
		Timestamp:  at,
	})
	q.UpdatedAt = at
}
