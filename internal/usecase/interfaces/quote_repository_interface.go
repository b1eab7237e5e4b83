package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IQuoteRepository abstracts quotation persistence.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	UpdateWithVersion(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error)
}
