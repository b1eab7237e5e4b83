package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/entities"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationDispatcher_OrderCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := mock_interfaces.NewMockIOutboxRepository(ctrl)
	d := NewNotificationDispatcher(outbox)

	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, ev entities.OutboxEvent) (entities.OutboxEvent, error) {
			if ev.ID != "order:ord-9:created" {
				t.Fatalf("unexpected dedupe key %s", ev.ID)
			}
			if ev.RecipientID != adminRecipientID || ev.Scope != entities.ScopeAdmin {
				t.Fatalf("order creation must target the admin inbox: %+v", ev)
			}
			if ev.Status != entities.OutboxStatusPending || ev.CreatedAt.IsZero() {
				t.Fatalf("dispatcher must stamp status and timestamps: %+v", ev)
			}
			return ev, nil
		},
	)

	d.OrderCreated(context.Background(), entities.Order{ID: "ord-9", TotalAmount: 42})
}

func TestNotificationDispatcher_DuplicateKeyIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := mock_interfaces.NewMockIOutboxRepository(ctrl)
	d := NewNotificationDispatcher(outbox)

	// zero-value event back means the conditional put lost to an earlier enqueue
	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(entities.OutboxEvent{}, nil)

	d.OrderStatusChanged(context.Background(), entities.Order{ID: "ord-9", CustomerID: "cust-1", Status: entities.OrderStatusConfirmed})
}

func TestNotificationDispatcher_EnqueueFailureIsSwallowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := mock_interfaces.NewMockIOutboxRepository(ctrl)
	d := NewNotificationDispatcher(outbox)

	outbox.EXPECT().Enqueue(gomock.Any(), gomock.Any()).Return(entities.OutboxEvent{}, errors.New("throttled"))

	d.OrderStatusChanged(context.Background(), entities.Order{ID: "ord-9", CustomerID: "cust-1", Status: entities.OrderStatusReady})
}

func TestNotificationDispatcher_QuoteWithoutResponseTextIsSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := mock_interfaces.NewMockIOutboxRepository(ctrl)
	d := NewNotificationDispatcher(outbox)

	// no Enqueue expectation: an empty response must not notify

	d.QuoteResponded(context.Background(), entities.Quote{ID: "qt-1", RequesterID: "cust-1"})
}
