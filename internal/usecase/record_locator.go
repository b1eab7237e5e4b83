package usecase

import (
	"context"
	"log"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase/interfaces"
)

// OrderLocation identifies a physical storage representation of an order.

type OrderLocation string

const (
	LocationCanonical OrderLocation = "canonical"
	LocationLegacy    OrderLocation = "legacy"
)

// OrderHandle is one physical location an order was found in, together with
// the snapshot read from it. During the storage migration a logical order may
// resolve to one or both locations; mutating callers must apply to all of
// them.
type OrderHandle struct {
	Location    OrderLocation
	OwnerUserID string
	Order       entities.Order
}

// RecordLocator resolves a logical order id to its physical handles.
//
// Canonical is tried first; the legacy per-user embedded representation is
// consulted regardless, because both may exist independently while the
// migration is in flight. Superseded legacy entries are not returned.
type RecordLocator struct {
	orders interfaces.IOrderRepository
	legacy interfaces.ILegacyOrderRepository
}

func NewRecordLocator(orders interfaces.IOrderRepository, legacy interfaces.ILegacyOrderRepository) *RecordLocator {
	return &RecordLocator{orders: orders, legacy: legacy}
}

func (l *RecordLocator) Locate(ctx context.Context, orderID string) ([]OrderHandle, error) {
	handles := make([]OrderHandle, 0, 2)

	canonical, err := l.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if canonical.ID != "" {
		handles = append(handles, OrderHandle{Location: LocationCanonical, Order: canonical})
	} else {
		log.Printf("[locator][usecase] order not found in canonical, checking legacy order_id=%s", orderID)
	}

	rec, err := l.legacy.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if rec.Order.ID != "" && !rec.Superseded {
		handles = append(handles, OrderHandle{Location: LocationLegacy, OwnerUserID: rec.UserID, Order: rec.Order})
	}

	return handles, nil
}

// Authoritative picks the handle state reads should trust: canonical wins
// when both exist. A disagreement between the two is reported as a
// consistency warning rather than silently resolved.
func Authoritative(handles []OrderHandle) (OrderHandle, string) {
	var canonical, legacy *OrderHandle
	for i := range handles {
		switch handles[i].Location {
		case LocationCanonical:
			canonical = &handles[i]
		case LocationLegacy:
			legacy = &handles[i]
		}
	}

	if canonical != nil {
		warning := ""
		if legacy != nil && legacy.Order.Status != canonical.Order.Status {
			warning = "canonical and legacy records disagree on status (canonical=" +
				canonical.Order.Status.String() + " legacy=" + legacy.Order.Status.String() + "); canonical preferred"
			log.Printf("[locator][usecase] consistency warning order_id=%s canonical=%s legacy=%s",
				canonical.Order.ID, canonical.Order.Status, legacy.Order.Status)
		}
		return *canonical, warning
	}
	return *legacy, ""
}
