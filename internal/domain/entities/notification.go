package entities

import "time"

// RecipientScope distinguishes admin-facing from customer-facing notifications.

type RecipientScope string

const (
	ScopeAdmin RecipientScope = "admin"
	ScopeUser  RecipientScope = "user"
)

// NotificationType tags what a notification is about.

type NotificationType string

const (
	NotificationOrderCreated  NotificationType = "order_created"
	NotificationOrderStatus   NotificationType = "order_status"
	NotificationQuoteResponse NotificationType = "quote_response"
)

// Notification is created exclusively by the dispatch pipeline; handlers only
// read and mark-read.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI dedupe_key-index (PK: dedupe_key)
//   - GSI recipient_id-index (PK: recipient_id)
//
// DedupeKey is entity id + transition, so a retried transition resolves to the
// same key and cannot notify twice.
type Notification struct {
	ID          string           `json:"id"`
	RecipientID string           `json:"recipient_id"`
	Scope       RecipientScope   `json:"scope"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	Read        bool             `json:"read"`
	EntityRef   string           `json:"entity_ref"`
	DedupeKey   string           `json:"dedupe_key"`
	CreatedAt   time.Time        `json:"created_at"`
}

// OutboxStatus is the delivery state of an enqueued side effect.

type OutboxStatus string

const (
	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// OutboxEvent is a durably enqueued notification intent. The mutation pipeline
// commits first and enqueues after; the worker owns delivery and retries.
//
// Storage model (DynamoDB):
//   - PK: id (the dedupe key, so a retried transition enqueues at most once)
//   - GSI status-index (PK: status)
type OutboxEvent struct {
	ID          string           `json:"id"`
	EntityType  string           `json:"entity_type"`
	EntityID    string           `json:"entity_id"`
	Type        NotificationType `json:"type"`
	RecipientID string           `json:"recipient_id"`
	Scope       RecipientScope   `json:"scope"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	Status      OutboxStatus     `json:"status"`
	Attempts    int              `json:"attempts"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}
