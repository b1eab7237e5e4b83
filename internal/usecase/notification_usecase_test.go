package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain/entities"
	mock_interfaces "storefront/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func newNotificationFixture(t *testing.T) (*NotificationUseCase, *mock_interfaces.MockINotificationRepository) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	return NewNotificationUseCase(repo), repo
}

func TestNotificationUseCase_ListForActor(t *testing.T) {
	t.Run("admins read the shared admin inbox", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		repo.EXPECT().ListByRecipient(gomock.Any(), adminRecipientID).Return([]entities.Notification{{ID: "n-1"}}, nil)

		list, err := uc.ListForActor(context.Background(), testAdmin)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].ID != "n-1" {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	t.Run("customers read their own inbox", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		repo.EXPECT().ListByRecipient(gomock.Any(), testCustomer.ID).Return(nil, nil)

		if _, err := uc.ListForActor(context.Background(), testCustomer); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		uc, _ := newNotificationFixture(t)
		_, err := uc.ListForActor(context.Background(), entities.Actor{})
		if !errors.Is(err, ErrUnauthenticated) {
			t.Fatalf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("marks own notification", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		repo.EXPECT().MarkRead(gomock.Any(), "n-1", testCustomer.ID).Return(entities.Notification{ID: "n-1", Read: true}, nil)

		n, err := uc.MarkRead(context.Background(), "n-1", testCustomer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.Read {
			t.Fatalf("expected read notification, got %+v", n)
		}
	})

	t.Run("someone else's notification looks like a miss", func(t *testing.T) {
		uc, repo := newNotificationFixture(t)
		// the repository's recipient condition failed: zero value, no error
		repo.EXPECT().MarkRead(gomock.Any(), "n-2", testCustomer.ID).Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), "n-2", testCustomer)
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("blank id rejected", func(t *testing.T) {
		uc, _ := newNotificationFixture(t)
		_, err := uc.MarkRead(context.Background(), "  ", testCustomer)
		if !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})
}
