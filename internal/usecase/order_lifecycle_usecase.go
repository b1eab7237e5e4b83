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
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidOrderInput = errors.New("invalid order input")
	// ErrVersionConflict: the conditional write lost a race; the caller should
	// re-read and retry.
	ErrVersionConflict = errors.New("version conflict")
)

// CreateOrderCommand is the input for direct order creation (the
// cash-on-delivery checkout path; the gateway path goes through the checkout
// coordinator, which calls CreateOrder itself).
type CreateOrderCommand struct {
	CustomerID      string
	CustomerEmail   string
	Items           []entities.OrderItem
	PaymentMethod   entities.PaymentMethod
	ShippingAddress entities.Address
}

// TransitionResult carries the updated order plus response metadata.
// ConsistencyWarning is set when canonical and legacy storage disagreed at
// read time; the warning is surfaced so operators can audit drift.
type TransitionResult struct {
	Order              entities.Order
	ConsistencyWarning string
}

// IOrderLifecycleUseCase is the order half of the lifecycle engine.

type IOrderLifecycleUseCase interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand, actor entities.Actor) (entities.Order, error)
	GetOrder(ctx context.Context, id string, actor entities.Actor) (TransitionResult, error)
	ApplyTransition(ctx context.Context, orderID string, requested entities.OrderStatus, note string, actor entities.Actor) (TransitionResult, error)
	Refund(ctx context.Context, orderID, note string, actor entities.Actor) (TransitionResult, error)
}

// OrderLifecycleUseCase applies validated transitions to every physical
// location an order resolves to.
//
// Write order is canonical first, then legacy. There is no transaction
// spanning the two tables: a failure between the writes leaves a transient
// inconsistency that the next read or mutation self-heals by treating
// canonical as authoritative. When promoteLegacy is set, the first mutation
// of a legacy-only order writes it into canonical storage and marks the
// legacy entry superseded, shrinking the dual-write surface over time.
type OrderLifecycleUseCase struct {
	orders        interfaces.IOrderRepository
	legacy        interfaces.ILegacyOrderRepository
	locator       *RecordLocator
	dispatcher    *NotificationDispatcher
	promoteLegacy bool
}

var _ IOrderLifecycleUseCase = (*OrderLifecycleUseCase)(nil)

func NewOrderLifecycleUseCase(
	orders interfaces.IOrderRepository,
	legacy interfaces.ILegacyOrderRepository,
	dispatcher *NotificationDispatcher,
	promoteLegacy bool,
) *OrderLifecycleUseCase {
	return &OrderLifecycleUseCase{
		orders:        orders,
		legacy:        legacy,
		locator:       NewRecordLocator(orders, legacy),
		dispatcher:    dispatcher,
		promoteLegacy: promoteLegacy,
	}
}

func (u *OrderLifecycleUseCase) CreateOrder(ctx context.Context, cmd CreateOrderCommand, actor entities.Actor) (entities.Order, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return entities.Order{}, ErrUnauthenticated
	}
	if actor.Role != entities.RoleAdmin && actor.Role != entities.RoleCustomer {
		return entities.Order{}, ErrForbidden
	}
	if len(cmd.Items) == 0 || !cmd.PaymentMethod.IsValid() {
		return entities.Order{}, ErrInvalidOrderInput
	}

	// Customers create for themselves; the caller-supplied id is ignored.
	customerID := strings.TrimSpace(cmd.CustomerID)
	if actor.Role == entities.RoleCustomer {
		customerID = actor.ID
	}
	if customerID == "" {
		return entities.Order{}, ErrInvalidOrderInput
	}

	total := 0.0
	items := make([]entities.OrderItem, 0, len(cmd.Items))
	for _, it := range cmd.Items {
		if it.Quantity <= 0 || it.UnitPrice < 0 || strings.TrimSpace(it.ProductID) == "" {
			return entities.Order{}, ErrInvalidOrderInput
		}
		it.Amount = it.UnitPrice * float64(it.Quantity)
		total += it.Amount
		items = append(items, it)
	}
	if total <= 0 {
		return entities.Order{}, ErrInvalidOrderInput
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:              uuid.NewString(),
		CustomerID:      customerID,
		CustomerEmail:   strings.TrimSpace(cmd.CustomerEmail),
		Items:           items,
		TotalAmount:     total,
		Status:          entities.OrderStatusPending,
		PaymentState:    entities.PaymentStatePending,
		PaymentMethod:   cmd.PaymentMethod,
		ShippingAddress: cmd.ShippingAddress,
		StatusHistory: []entities.StatusHistoryEntry{{
			Status:    entities.OrderStatusPending,
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Note:      "order created",
			Timestamp: now,
		}},
		PaymentHistory: []entities.PaymentHistoryEntry{{
			State:     entities.PaymentStatePending,
			Method:    cmd.PaymentMethod,
			ActorID:   actor.ID,
			ActorRole: actor.Role,
			Timestamp: now,
		}},
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	cctx, cancel := storeCtx(ctx)
	defer cancel()
	created, err := u.orders.Create(cctx, o)
	if err != nil {
		log.Printf("[order][usecase] create failed order_id=%s err=%v", o.ID, err)
		return entities.Order{}, mapStoreErr(err)
	}
	log.Printf("[order][usecase] create success order_id=%s customer_id=%s total=%.2f", created.ID, customerID, total)

	u.dispatcher.OrderCreated(context.WithoutCancel(ctx), created)
	return created, nil
}

func (u *OrderLifecycleUseCase) GetOrder(ctx context.Context, id string, actor entities.Actor) (TransitionResult, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return TransitionResult{}, ErrUnauthenticated
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return TransitionResult{}, ErrInvalidOrderID
	}

	cctx, cancel := storeCtx(ctx)
	defer cancel()
	handles, err := u.locator.Locate(cctx, id)
	if err != nil {
		return TransitionResult{}, mapStoreErr(err)
	}
	if len(handles) == 0 {
		return TransitionResult{}, ErrOrderNotFound
	}

	auth, warning := Authoritative(handles)
	switch actor.Role {
	case entities.RoleAdmin:
	case entities.RoleCustomer:
		if auth.Order.CustomerID != actor.ID {
			return TransitionResult{}, ErrForbidden
		}
	default:
		if !actor.Role.HasCapability(entities.CapViewOrders) {
			return TransitionResult{}, ErrForbidden
		}
	}
	return TransitionResult{Order: auth.Order, ConsistencyWarning: warning}, nil
}

func (u *OrderLifecycleUseCase) ApplyTransition(ctx context.Context, orderID string, requested entities.OrderStatus, note string, actor entities.Actor) (TransitionResult, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return TransitionResult{}, ErrUnauthenticated
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return TransitionResult{}, ErrInvalidOrderID
	}
	log.Printf("[order][usecase] transition start order_id=%s requested=%s actor=%s role=%s", orderID, requested, actor.ID, actor.Role)

	lctx, cancel := storeCtx(ctx)
	handles, err := u.locator.Locate(lctx, orderID)
	cancel()
	if err != nil {
		return TransitionResult{}, mapStoreErr(err)
	}
	if len(handles) == 0 {
		return TransitionResult{}, ErrOrderNotFound
	}

	auth, warning := Authoritative(handles)
	if actor.Role == entities.RoleCustomer && auth.Order.CustomerID != actor.ID {
		log.Printf("[order][usecase] transition denied order_id=%s actor=%s err=not owner", orderID, actor.ID)
		return TransitionResult{}, ErrForbidden
	}
	current := auth.Order.Status

	// Writes run detached from the caller: an abandoned request must not
	// leave the fan-out half-applied.
	wctx := context.WithoutCancel(ctx)

	if current == requested {
		if u.isCommittedRetry(auth.Order, requested, actor) {
			log.Printf("[order][usecase] transition already applied order_id=%s status=%s", orderID, requested)
			u.healLagging(wctx, handles, auth.Order)
			return TransitionResult{Order: auth.Order, ConsistencyWarning: warning}, nil
		}
		return TransitionResult{}, ErrInvalidTransition
	}

	if err := AuthorizeOrderTransition(actor, current, requested); err != nil {
		log.Printf("[order][usecase] transition denied order_id=%s current=%s requested=%s role=%s err=%v", orderID, current, requested, actor.Role, err)
		return TransitionResult{}, err
	}

	now := time.Now().UTC()
	updated := auth.Order
	updated.AppendStatus(requested, actor, note, now)

	result, err := u.fanOut(wctx, handles, updated, func(o *entities.Order) bool {
		if last, ok := o.LastStatusEntry(); ok && last.Status == requested && o.Status == requested {
			return false // this handle already carries the transition
		}
		o.AppendStatus(requested, actor, note, now)
		return true
	})
	if err != nil {
		return TransitionResult{}, err
	}

	log.Printf("[order][usecase] transition success order_id=%s status=%s", orderID, requested)
	u.dispatcher.OrderStatusChanged(wctx, result)
	return TransitionResult{Order: result, ConsistencyWarning: warning}, nil
}

func (u *OrderLifecycleUseCase) Refund(ctx context.Context, orderID, note string, actor entities.Actor) (TransitionResult, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return TransitionResult{}, ErrUnauthenticated
	}
	if actor.Role != entities.RoleAdmin {
		return TransitionResult{}, ErrForbidden
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return TransitionResult{}, ErrInvalidOrderID
	}

	lctx, cancel := storeCtx(ctx)
	handles, err := u.locator.Locate(lctx, orderID)
	cancel()
	if err != nil {
		return TransitionResult{}, mapStoreErr(err)
	}
	if len(handles) == 0 {
		return TransitionResult{}, ErrOrderNotFound
	}

	auth, warning := Authoritative(handles)
	if !auth.Order.PaymentState.CanTransitionTo(entities.PaymentStateRefunded) {
		return TransitionResult{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	updated := auth.Order
	updated.AppendPayment(entities.PaymentStateRefunded, actor, note, now)

	wctx := context.WithoutCancel(ctx)
	result, err := u.fanOut(wctx, handles, updated, func(o *entities.Order) bool {
		if o.PaymentState == entities.PaymentStateRefunded {
			return false
		}
		o.AppendPayment(entities.PaymentStateRefunded, actor, note, now)
		return true
	})
	if err != nil {
		return TransitionResult{}, err
	}

	log.Printf("[order][usecase] refund success order_id=%s", orderID)
	return TransitionResult{Order: result, ConsistencyWarning: warning}, nil
}

// ReconcilePayment applies a gateway-reported payment outcome to every
// location of the order. Only a pending payment state may move; an order
// already at the target state is an idempotent no-op, so client retries of
// the return callback are safe. The lifecycle status is never touched here.
func (u *OrderLifecycleUseCase) ReconcilePayment(ctx context.Context, orderID string, target entities.PaymentState, note string, actor entities.Actor) (TransitionResult, error) {
	if actor.ID == "" || !actor.Role.IsValid() {
		return TransitionResult{}, ErrUnauthenticated
	}
	if target != entities.PaymentStatePaid && target != entities.PaymentStateFailed {
		return TransitionResult{}, ErrInvalidTransition
	}
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return TransitionResult{}, ErrInvalidOrderID
	}

	lctx, cancel := storeCtx(ctx)
	handles, err := u.locator.Locate(lctx, orderID)
	cancel()
	if err != nil {
		return TransitionResult{}, mapStoreErr(err)
	}
	if len(handles) == 0 {
		return TransitionResult{}, ErrOrderNotFound
	}

	auth, warning := Authoritative(handles)
	if actor.Role == entities.RoleCustomer && auth.Order.CustomerID != actor.ID {
		return TransitionResult{}, ErrForbidden
	}
	if auth.Order.PaymentState == target {
		log.Printf("[order][usecase] payment already reconciled order_id=%s state=%s", orderID, target)
		return TransitionResult{Order: auth.Order, ConsistencyWarning: warning}, nil
	}
	if !auth.Order.PaymentState.CanTransitionTo(target) {
		return TransitionResult{}, ErrInvalidTransition
	}

	now := time.Now().UTC()
	updated := auth.Order
	updated.AppendPayment(target, actor, note, now)

	wctx := context.WithoutCancel(ctx)
	result, err := u.fanOut(wctx, handles, updated, func(o *entities.Order) bool {
		if o.PaymentState == target {
			return false
		}
		o.AppendPayment(target, actor, note, now)
		return true
	})
	if err != nil {
		return TransitionResult{}, err
	}

	log.Printf("[order][usecase] payment reconciled order_id=%s state=%s", orderID, target)
	return TransitionResult{Order: result, ConsistencyWarning: warning}, nil
}

// fanOut writes an already-mutated authoritative copy to every handle:
// canonical first (version-conditional), then each legacy entry. mutate is
// applied to per-handle snapshots so a handle that already carries the change
// is skipped instead of double-appended. updated must be the authoritative
// snapshot with the mutation applied.
func (u *OrderLifecycleUseCase) fanOut(ctx context.Context, handles []OrderHandle, updated entities.Order, mutate func(*entities.Order) bool) (entities.Order, error) {
	hasCanonical := hasLocation(handles, LocationCanonical)
	result := updated

	switch {
	case hasCanonical:
		out, err := u.writeCanonical(ctx, updated)
		if err != nil {
			return entities.Order{}, err
		}
		result = out
	case u.promoteLegacy:
		promoted := updated
		promoted.Version = 1
		cctx, cancel := storeCtx(ctx)
		out, err := u.orders.Create(cctx, promoted)
		cancel()
		if err != nil {
			return entities.Order{}, mapStoreErr(err)
		}
		result = out
		log.Printf("[order][usecase] promoted legacy order to canonical order_id=%s", updated.ID)
	}

	for _, h := range handles {
		if h.Location != LocationLegacy {
			continue
		}

		if !hasCanonical && u.promoteLegacy {
			// The promoted canonical record is now authoritative; the old
			// embedded entry is retired rather than rewritten.
			cctx, cancel := storeCtx(ctx)
			err := u.legacy.MarkOrderSuperseded(cctx, h.OwnerUserID, updated.ID)
			cancel()
			if err != nil {
				log.Printf("[order][usecase] mark superseded failed order_id=%s user_id=%s err=%v", updated.ID, h.OwnerUserID, err)
			}
			continue
		}

		legacyCopy := h.Order
		if !mutate(&legacyCopy) {
			continue
		}
		cctx, cancel := storeCtx(ctx)
		err := u.legacy.UpdateEmbeddedOrder(cctx, h.OwnerUserID, legacyCopy)
		cancel()
		if err != nil {
			if !hasCanonical {
				// the embedded entry was the only location; nothing committed
				return entities.Order{}, mapStoreErr(err)
			}
			// canonical already committed; legacy lag is the accepted
			// transient inconsistency and self-heals on the next pass
			log.Printf("[order][usecase] legacy write failed after canonical commit order_id=%s user_id=%s err=%v", updated.ID, h.OwnerUserID, err)
			continue
		}
		if !hasCanonical && !u.promoteLegacy {
			result = legacyCopy
		}
	}

	return result, nil
}

func (u *OrderLifecycleUseCase) writeCanonical(ctx context.Context, o entities.Order) (entities.Order, error) {
	expected := o.Version
	o.Version = expected + 1

	cctx, cancel := storeCtx(ctx)
	defer cancel()
	out, err := u.orders.UpdateWithVersion(cctx, o, expected)
	if err != nil {
		return entities.Order{}, mapStoreErr(err)
	}
	if out.ID == "" {
		return entities.Order{}, ErrVersionConflict
	}
	return out, nil
}

// isCommittedRetry reports whether a (orderID, requested) pair arriving with
// current == requested is the retry of a transition that already committed:
// the last history entry matches the target, the entry before it is a legal
// predecessor, and the actor was allowed to make that move. The initial state
// never qualifies, so a pending -> pending request stays invalid.
func (u *OrderLifecycleUseCase) isCommittedRetry(o entities.Order, requested entities.OrderStatus, actor entities.Actor) bool {
	if !requested.HasInboundEdge() {
		return false
	}
	n := len(o.StatusHistory)
	if n < 2 {
		return false
	}
	if o.StatusHistory[n-1].Status != requested {
		return false
	}
	return AuthorizeOrderTransition(actor, o.StatusHistory[n-2].Status, requested) == nil
}

// healLagging re-applies the authoritative state to legacy handles that
// missed the original fan-out.
func (u *OrderLifecycleUseCase) healLagging(ctx context.Context, handles []OrderHandle, auth entities.Order) {
	last, ok := auth.LastStatusEntry()
	if !ok {
		return
	}
	for _, h := range handles {
		if h.Location != LocationLegacy || h.Order.Status == auth.Status {
			continue
		}
		legacyCopy := h.Order
		legacyCopy.AppendStatus(last.Status, entities.Actor{ID: last.ActorID, Role: last.ActorRole}, last.Note, last.Timestamp)
		cctx, cancel := storeCtx(ctx)
		err := u.legacy.UpdateEmbeddedOrder(cctx, h.OwnerUserID, legacyCopy)
		cancel()
		if err != nil {
			log.Printf("[order][usecase] heal failed order_id=%s user_id=%s err=%v", auth.ID, h.OwnerUserID, err)
			continue
		}
		log.Printf("[order][usecase] healed lagging legacy copy order_id=%s user_id=%s status=%s", auth.ID, h.OwnerUserID, auth.Status)
	}
}

func hasLocation(handles []OrderHandle, loc OrderLocation) bool {
	for _, h := range handles {
		if h.Location == loc {
			return true
		}
	}
	return false
}
