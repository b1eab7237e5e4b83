package usecase

import (
	"context"
	"errors"
	"strings"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

var (
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
)

// INotificationUseCase is the thin read surface over notifications. Creation
// belongs exclusively to the outbox worker.

type INotificationUseCase interface {
	ListForActor(ctx context.Context, actor entities.Actor) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string, actor entities.Actor) (entities.Notification, error)
}

type NotificationUseCase struct {
	repo interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(repo interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// inboxFor maps the actor onto their inbox: admins share the admin inbox,
// everyone else reads their own.
func inboxFor(actor entities.Actor) string {
	if actor.Role == entities.RoleAdmin {
		return adminRecipientID
	}
	return actor.ID
}

func (u *NotificationUseCase) ListForActor(ctx context.Context, actor entities.Actor) ([]entities.Notification, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return nil, ErrUnauthenticated
	}
	cctx, cancel := storeCtx(ctx)
	defer cancel()
	list, err := u.repo.ListByRecipient(cctx, inboxFor(actor))
	if err != nil {
		return nil, mapStoreErr(err)
	}
	return list, nil
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string, actor entities.Actor) (entities.Notification, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Notification{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	cctx, cancel := storeCtx(ctx)
	defer cancel()
	n, err := u.repo.MarkRead(cctx, id, inboxFor(actor))
	if err != nil {
		return entities.Notification{}, mapStoreErr(err)
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
