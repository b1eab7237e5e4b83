package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IOrderRepository abstracts canonical order persistence.
//
// Conventions (shared by all repositories here):
//   - a zero-value entity with a nil error means "not found"
//   - UpdateWithVersion returns a zero-value entity when the conditional
//     write fails, i.e. someone else moved the order first

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateWithVersion(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error)
}
