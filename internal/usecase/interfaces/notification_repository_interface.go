package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// INotificationRepository abstracts the notification sink. Creation is owned
// by the outbox worker; the HTTP surface only lists and marks read.

type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByDedupeKey(ctx context.Context, dedupeKey string) (entities.Notification, error)
	ListByRecipient(ctx context.Context, recipientID string) ([]entities.Notification, error)
	// MarkRead flips the read flag only when the notification belongs to
	// recipientID; otherwise it behaves as not found.
	MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error)
}
