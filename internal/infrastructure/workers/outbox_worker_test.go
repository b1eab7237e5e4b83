package workers

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/entities"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newWorkerFixture(t *testing.T) (*OutboxWorker, *mock_interfaces.MockIOutboxRepository, *mock_interfaces.MockINotificationRepository) {
	ctrl := gomock.NewController(t)
	outbox := mock_interfaces.NewMockIOutboxRepository(ctrl)
	notifications := mock_interfaces.NewMockINotificationRepository(ctrl)
	return NewOutboxWorker(outbox, notifications), outbox, notifications
}

func pendingEvent(attempts int) entities.OutboxEvent {
	return entities.OutboxEvent{
		ID:          "order:ord-1:status:confirmed",
		EntityType:  "order",
		EntityID:    "ord-1",
		Type:        entities.NotificationOrderStatus,
		RecipientID: "cust-1",
		Scope:       entities.ScopeUser,
		Title:       "Order update",
		Body:        "Your order ord-1 is now confirmed",
		Status:      entities.OutboxStatusPending,
		Attempts:    attempts,
	}
}

func TestOutboxWorker_Deliver(t *testing.T) {
	t.Run("creates the notification and marks the event sent", func(t *testing.T) {
		w, outbox, notifications := newWorkerFixture(t)
		ev := pendingEvent(0)

		outbox.EXPECT().ListPending(gomock.Any(), gomock.Any()).Return([]entities.OutboxEvent{ev}, nil)
		notifications.EXPECT().GetByDedupeKey(gomock.Any(), ev.ID).Return(entities.Notification{}, nil)
		outbox.EXPECT().IncrementAttempts(gomock.Any(), ev.ID).DoAndReturn(
			func(_ context.Context, _ string) (entities.OutboxEvent, error) {
				bumped := ev
				bumped.Attempts = 1
				return bumped, nil
			},
		)
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.DedupeKey != ev.ID {
					t.Fatalf("dedupe key must be the event id, got %s", n.DedupeKey)
				}
				if n.RecipientID != ev.RecipientID || n.EntityRef != ev.EntityID {
					t.Fatalf("unexpected notification: %+v", n)
				}
				if n.ID == "" || n.ID == ev.ID {
					t.Fatalf("notification needs its own id, got %q", n.ID)
				}
				return n, nil
			},
		)
		outbox.EXPECT().MarkSent(gomock.Any(), ev.ID).Return(nil)

		w.drainOnce(context.Background())
	})

	t.Run("existing dedupe key finishes bookkeeping without re-notifying", func(t *testing.T) {
		w, outbox, notifications := newWorkerFixture(t)
		ev := pendingEvent(1)

		outbox.EXPECT().ListPending(gomock.Any(), gomock.Any()).Return([]entities.OutboxEvent{ev}, nil)
		notifications.EXPECT().GetByDedupeKey(gomock.Any(), ev.ID).Return(entities.Notification{ID: "n-existing", DedupeKey: ev.ID}, nil)
		outbox.EXPECT().MarkSent(gomock.Any(), ev.ID).Return(nil)
		// no Create: delivering twice is exactly what the dedupe key prevents

		w.drainOnce(context.Background())
	})

	t.Run("create failure below the attempt cap leaves the event pending", func(t *testing.T) {
		w, outbox, notifications := newWorkerFixture(t)
		ev := pendingEvent(0)

		outbox.EXPECT().ListPending(gomock.Any(), gomock.Any()).Return([]entities.OutboxEvent{ev}, nil)
		notifications.EXPECT().GetByDedupeKey(gomock.Any(), ev.ID).Return(entities.Notification{}, nil)
		outbox.EXPECT().IncrementAttempts(gomock.Any(), ev.ID).DoAndReturn(
			func(_ context.Context, _ string) (entities.OutboxEvent, error) {
				bumped := ev
				bumped.Attempts = 1
				return bumped, nil
			},
		)
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("throttled"))
		// no MarkFailed, no MarkSent: the next poll retries

		w.drainOnce(context.Background())
	})

	t.Run("create failure at the attempt cap marks the event failed", func(t *testing.T) {
		w, outbox, notifications := newWorkerFixture(t)
		ev := pendingEvent(4)

		outbox.EXPECT().ListPending(gomock.Any(), gomock.Any()).Return([]entities.OutboxEvent{ev}, nil)
		notifications.EXPECT().GetByDedupeKey(gomock.Any(), ev.ID).Return(entities.Notification{}, nil)
		outbox.EXPECT().IncrementAttempts(gomock.Any(), ev.ID).DoAndReturn(
			func(_ context.Context, _ string) (entities.OutboxEvent, error) {
				bumped := ev
				bumped.Attempts = 5
				return bumped, nil
			},
		)
		notifications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("still throttled"))
		outbox.EXPECT().MarkFailed(gomock.Any(), ev.ID).Return(nil)

		w.drainOnce(context.Background())
	})

	t.Run("list failure skips the cycle", func(t *testing.T) {
		w, outbox, _ := newWorkerFixture(t)
		outbox.EXPECT().ListPending(gomock.Any(), gomock.Any()).Return(nil, errors.New("dynamo down"))

		w.drainOnce(context.Background())
	})
}
