package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// ILegacyOrderRepository abstracts the pre-migration storage representation:
// orders embedded as array entries inside user documents.
//
// FindOrderByID is a linear scan over the users table. Acceptable at the
// current data scale; replace with an order-id index before the user base
// makes O(users) reads hurt.

type ILegacyOrderRepository interface {
	FindOrderByID(ctx context.Context, orderID string) (entities.LegacyOrderRecord, error)
	UpdateEmbeddedOrder(ctx context.Context, userID string, o entities.Order) error
	MarkOrderSuperseded(ctx context.Context, userID, orderID string) error
}
