package workers

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	defaultPollIntervalSeconds = 5
	defaultMaxAttempts         = 5
	defaultBatchSize           = 25
)

// OutboxWorker drains the notification outbox: at-least-once delivery with
// the dedupe key absorbing the duplicates.
//
// Delivery of one event is check-then-create: if a notification with the
// event's dedupe key already exists the event is just marked sent, so a crash
// between Create and MarkSent cannot notify twice.
type OutboxWorker struct {
	outbox        interfaces.IOutboxRepository
	notifications interfaces.INotificationRepository
	pollInterval  time.Duration
	maxAttempts   int
	batchSize     int
}

func NewOutboxWorker(outbox interfaces.IOutboxRepository, notifications interfaces.INotificationRepository) *OutboxWorker {
	return &OutboxWorker{
		outbox:        outbox,
		notifications: notifications,
		pollInterval:  time.Duration(envInt("OUTBOX_POLL_INTERVAL_SECONDS", defaultPollIntervalSeconds)) * time.Second,
		maxAttempts:   envInt("OUTBOX_MAX_ATTEMPTS", defaultMaxAttempts),
		batchSize:     envInt("OUTBOX_BATCH_SIZE", defaultBatchSize),
	}
}

// Run polls until ctx is cancelled. Intended to run in its own goroutine
// alongside the HTTP server.
func (w *OutboxWorker) Run(ctx context.Context) {
	log.Printf("[outbox][worker] started poll_interval=%s max_attempts=%d", w.pollInterval, w.maxAttempts)
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Printf("[outbox][worker] stopped")
			return
		case <-ticker.C:
			w.drainOnce(ctx)
		}
	}
}

func (w *OutboxWorker) drainOnce(ctx context.Context) {
	events, err := w.outbox.ListPending(ctx, w.batchSize)
	if err != nil {
		log.Printf("[outbox][worker] list pending failed err=%v", err)
		return
	}
	for _, ev := range events {
		w.deliver(ctx, ev)
	}
}

func (w *OutboxWorker) deliver(ctx context.Context, ev entities.OutboxEvent) {
	existing, err := w.notifications.GetByDedupeKey(ctx, ev.ID)
	if err != nil {
		log.Printf("[outbox][worker] dedupe lookup failed event_id=%s err=%v", ev.ID, err)
		return
	}
	if existing.ID != "" {
		// A previous attempt created the notification but never marked the
		// event sent. Finish the bookkeeping.
		if err := w.outbox.MarkSent(ctx, ev.ID); err != nil {
			log.Printf("[outbox][worker] mark sent failed event_id=%s err=%v", ev.ID, err)
		}
		return
	}

	updated, err := w.outbox.IncrementAttempts(ctx, ev.ID)
	if err != nil {
		log.Printf("[outbox][worker] increment attempts failed event_id=%s err=%v", ev.ID, err)
		return
	}
	if updated.ID != "" {
		ev = updated
	}

	n := entities.Notification{
		ID:          uuid.NewString(),
		RecipientID: ev.RecipientID,
		Scope:       ev.Scope,
		Type:        ev.Type,
		Title:       ev.Title,
		Body:        ev.Body,
		EntityRef:   ev.EntityID,
		DedupeKey:   ev.ID,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := w.notifications.Create(ctx, n); err != nil {
		log.Printf("[outbox][worker] delivery failed event_id=%s attempts=%d err=%v", ev.ID, ev.Attempts, err)
		if ev.Attempts >= w.maxAttempts {
			log.Printf("[outbox][worker] giving up event_id=%s attempts=%d", ev.ID, ev.Attempts)
			if err := w.outbox.MarkFailed(ctx, ev.ID); err != nil {
				log.Printf("[outbox][worker] mark failed failed event_id=%s err=%v", ev.ID, err)
			}
		}
		return
	}

	if err := w.outbox.MarkSent(ctx, ev.ID); err != nil {
		// The dedupe check above recovers this on the next poll.
		log.Printf("[outbox][worker] mark sent failed event_id=%s err=%v", ev.ID, err)
		return
	}
	log.Printf("[outbox][worker] delivered event_id=%s recipient_id=%s type=%s", ev.ID, ev.RecipientID, ev.Type)
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
