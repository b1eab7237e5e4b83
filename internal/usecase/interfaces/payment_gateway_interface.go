package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IPaymentGateway abstracts the hosted checkout provider (e.g. Mercado Pago).
//
// The engine only ever creates a session; the outcome comes back through the
// return callback and is reconciled by the checkout usecase. The request
// metadata must carry the order id round-trip.
type IPaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, req entities.CheckoutSessionRequest) (entities.CheckoutSession, error)
}
