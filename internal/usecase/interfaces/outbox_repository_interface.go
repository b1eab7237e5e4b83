package interfaces

import (
	"context"
	"storefront/internal/domain/entities"
)

// IOutboxRepository abstracts the durable side-effect queue.
//
// Enqueue is a conditional create keyed by the dedupe key; enqueueing an
// already-known event returns a zero-value entity with a nil error, which
// callers treat as "already enqueued, nothing to do".

type IOutboxRepository interface {
	Enqueue(ctx context.Context, ev entities.OutboxEvent) (entities.OutboxEvent, error)
	ListPending(ctx context.Context, limit int) ([]entities.OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string) error
	IncrementAttempts(ctx context.Context, id string) (entities.OutboxEvent, error)
}
