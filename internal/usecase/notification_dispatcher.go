package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

// adminRecipientID is the well-known recipient for admin-scoped
// notifications; the admin inbox is shared, not per-user.
const adminRecipientID = "admin"

// NotificationDispatcher translates accepted transitions into durable outbox
// events. It is fire-and-continue: enqueue failures are logged and never
// surface to the mutation caller, and the dedupe-keyed conditional put makes
// a retried transition enqueue at most once.
type NotificationDispatcher struct {
	outbox interfaces.IOutboxRepository
}

func NewNotificationDispatcher(outbox interfaces.IOutboxRepository) *NotificationDispatcher {
	return &NotificationDispatcher{outbox: outbox}
}

// OrderCreated notifies the admin scope about a new order.
func (d *NotificationDispatcher) OrderCreated(ctx context.Context, o entities.Order) {
	d.enqueue(ctx, entities.OutboxEvent{
		ID:          fmt.Sprintf("order:%s:created", o.ID),
		EntityType:  "order",
		EntityID:    o.ID,
		Type:        entities.NotificationOrderCreated,
		RecipientID: adminRecipientID,
		Scope:       entities.ScopeAdmin,
		Title:       "New order received",
		Body:        fmt.Sprintf("Order %s was placed for %.2f", o.ID, o.TotalAmount),
	})
}

// OrderStatusChanged notifies the owning customer about a lifecycle move.
func (d *NotificationDispatcher) OrderStatusChanged(ctx context.Context, o entities.Order) {
	d.enqueue(ctx, entities.OutboxEvent{
		ID:          fmt.Sprintf("order:%s:status:%s", o.ID, o.Status),
		EntityType:  "order",
		EntityID:    o.ID,
		Type:        entities.NotificationOrderStatus,
		RecipientID: o.CustomerID,
		Scope:       entities.ScopeUser,
		Title:       "Order update",
		Body:        fmt.Sprintf("Your order %s is now %s", o.ID, o.Status),
	})
}

// QuoteResponded notifies the requesting customer once an admin response with
// text is on the quote. The dedupe key ignores retries of the same response.
func (d *NotificationDispatcher) QuoteResponded(ctx context.Context, q entities.Quote) {
	if q.AdminResponse == "" {
		return
	}
	d.enqueue(ctx, entities.OutboxEvent{
		ID:          fmt.Sprintf("quote:%s:responded", q.ID),
		EntityType:  "quote",
		EntityID:    q.ID,
		Type:        entities.NotificationQuoteResponse,
		RecipientID: q.RequesterID,
		Scope:       entities.ScopeUser,
		Title:       "Your quotation has a response",
		Body:        q.AdminResponse,
	})
}

func (d *NotificationDispatcher) enqueue(ctx context.Context, ev entities.OutboxEvent) {
	now := time.Now().UTC()
	ev.Status = entities.OutboxStatusPending
	ev.CreatedAt = now
	ev.UpdatedAt = now

	cctx, cancel := storeCtx(ctx)
	defer cancel()

	created, err := d.outbox.Enqueue(cctx, ev)
	if err != nil {
		log.Printf("[notify][dispatch] enqueue failed key=%s err=%v", ev.ID, err)
		return
	}
	if created.ID == "" {
		log.Printf("[notify][dispatch] already enqueued key=%s", ev.ID)
		return
	}
	log.Printf("[notify][dispatch] enqueued key=%s recipient=%s scope=%s", ev.ID, ev.RecipientID, ev.Scope)
}
