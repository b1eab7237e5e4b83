package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuoteNotFound     = errors.New("quote not found")
	ErrInvalidQuoteID    = errors.New("invalid quote id")
	ErrInvalidQuoteInput = errors.New("invalid quote input")
	// ErrQuoteTerminal: the quote reached a terminal state; neither status
	// nor message thread may change anymore.
	ErrQuoteTerminal = errors.New("quote is terminal")
)

type CreateQuoteCommand struct {
	RequesterEmail string
	Description    string
	Items          []entities.QuoteItem
}

// IQuoteUseCase exposes the quotation half of the lifecycle engine.

type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, cmd CreateQuoteCommand, actor entities.Actor) (entities.Quote, error)
	GetQuote(ctx context.Context, id string, actor entities.Actor) (entities.Quote, error)
	Respond(ctx context.Context, quoteID, responseText string, actor entities.Actor) (entities.Quote, error)
	ApplyTransition(ctx context.Context, quoteID string, requested entities.QuoteStatus, actor entities.Actor) (entities.Quote, error)
	AppendMessage(ctx context.Context, quoteID, text string, actor entities.Actor) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	dispatcher *NotificationDispatcher
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, dispatcher *NotificationDispatcher) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, dispatcher: dispatcher}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, cmd CreateQuoteCommand, actor entities.Actor) (entities.Quote, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Quote{}, ErrUnauthenticated
	}
	if actor.Role != entities.RoleCustomer && actor.Role != entities.RoleAdmin {
		return entities.Quote{}, ErrForbidden
	}
	description := strings.TrimSpace(cmd.Description)
	if description == "" && len(cmd.Items) == 0 {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	now := time.Now().UTC()
	q := entities.Quote{
		ID:             uuid.NewString(),
		RequesterID:    actor.ID,
		RequesterEmail: strings.TrimSpace(cmd.RequesterEmail),
		Description:    description,
		Items:          cmd.Items,
		Status:         entities.QuoteStatusPending,
		Version:        1,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if description != "" {
		q.AppendMessage(actor, description, now)
	}

	cctx, cancel := storeCtx(ctx)
	defer cancel()
	created, err := u.repo.Create(cctx, q)
	if err != nil {
		log.Printf("[quote][usecase] create failed quote_id=%s err=%v", q.ID, err)
		return entities.Quote{}, mapStoreErr(err)
	}
	log.Printf("[quote][usecase] create success quote_id=%s requester=%s", created.ID, actor.ID)
	return created, nil
}

func (u *QuoteUseCase) GetQuote(ctx context.Context, id string, actor entities.Actor) (entities.Quote, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Quote{}, ErrUnauthenticated
	}
	q, err := u.load(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleCustomer:
		if q.RequesterID != actor.ID {
			return entities.Quote{}, ErrForbidden
		}
	default:
		if !actor.Role.HasCapability(entities.CapManageQuotes) {
			return entities.Quote{}, ErrForbidden
		}
	}
	return q, nil
}

// Respond records the admin response text and moves the quote to responded.
// Re-sending the identical response is an idempotent no-op, so a retried
// request cannot duplicate the message thread or re-notify.
func (u *QuoteUseCase) Respond(ctx context.Context, quoteID, responseText string, actor entities.Actor) (entities.Quote, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Quote{}, ErrUnauthenticated
	}
	if !actor.Role.HasCapability(entities.CapManageQuotes) {
		return entities.Quote{}, ErrForbidden
	}
	responseText = strings.TrimSpace(responseText)
	if responseText == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}

	if q.Status == entities.QuoteStatusResponded && q.AdminResponse == responseText {
		log.Printf("[quote][usecase] response already recorded quote_id=%s", q.ID)
		return q, nil
	}
	if q.Status.IsTerminal() {
		return entities.Quote{}, ErrQuoteTerminal
	}
	if err := AuthorizeQuoteTransition(actor, q.Status, entities.QuoteStatusResponded); err != nil {
		return entities.Quote{}, err
	}

	now := time.Now().UTC()
	updated := q
	updated.AdminResponse = responseText
	updated.Status = entities.QuoteStatusResponded
	updated.AppendMessage(actor, responseText, now)

	saved, err := u.save(ctx, updated, q.Version)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] responded quote_id=%s", saved.ID)

	u.dispatcher.QuoteResponded(context.WithoutCancel(ctx), saved)
	return saved, nil
}

func (u *QuoteUseCase) ApplyTransition(ctx context.Context, quoteID string, requested entities.QuoteStatus, actor entities.Actor) (entities.Quote, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Quote{}, ErrUnauthenticated
	}

	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if err := AuthorizeQuoteTransition(actor, q.Status, requested); err != nil {
		return entities.Quote{}, err
	}
	if actor.Role == entities.RoleCustomer && q.RequesterID != actor.ID {
		return entities.Quote{}, ErrForbidden
	}

	updated := q
	updated.Status = requested
	updated.UpdatedAt = time.Now().UTC()

	saved, err := u.save(ctx, updated, q.Version)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] transition success quote_id=%s status=%s actor=%s", saved.ID, requested, actor.ID)
	return saved, nil
}

func (u *QuoteUseCase) AppendMessage(ctx context.Context, quoteID, text string, actor entities.Actor) (entities.Quote, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Quote{}, ErrUnauthenticated
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.Quote{}, ErrInvalidQuoteInput
	}

	q, err := u.load(ctx, quoteID)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.Status.IsTerminal() {
		return entities.Quote{}, ErrQuoteTerminal
	}
	if err := AuthorizeQuoteMessage(actor, q.Status); err != nil {
		return entities.Quote{}, err
	}
	if actor.Role == entities.RoleCustomer && q.RequesterID != actor.ID {
		return entities.Quote{}, ErrForbidden
	}

	updated := q
	updated.AppendMessage(actor, text, time.Now().UTC())

	saved, err := u.save(ctx, updated, q.Version)
	if err != nil {
		return entities.Quote{}, err
	}
	log.Printf("[quote][usecase] message appended quote_id=%s sender=%s", saved.ID, actor.ID)
	return saved, nil
}

func (u *QuoteUseCase) load(ctx context.Context, quoteID string) (entities.Quote, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	cctx, cancel := storeCtx(ctx)
	defer cancel()
	q, err := u.repo.GetByID(cctx, quoteID)
	if err != nil {
		return entities.Quote{}, mapStoreErr(err)
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) save(ctx context.Context, q entities.Quote, expectedVersion int64) (entities.Quote, error) {
	q.Version = expectedVersion + 1
	cctx, cancel := storeCtx(context.WithoutCancel(ctx))
	defer cancel()
	saved, err := u.repo.UpdateWithVersion(cctx, q, expectedVersion)
	if err != nil {
		return entities.Quote{}, mapStoreErr(err)
	}
	if saved.ID == "" {
		return entities.Quote{}, ErrVersionConflict
	}
	return saved, nil
}
