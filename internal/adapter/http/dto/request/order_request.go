package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

type OrderItemRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
}

type AddressRequest struct {
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// CreateOrderRequest is the cash-on-delivery creation payload. Gateway orders
// are created through the checkout session endpoint instead.
type CreateOrderRequest struct {
	CustomerEmail   string             `json:"customer_email"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	ShippingAddress AddressRequest     `json:"shipping_address"`
}

func (r CreateOrderRequest) ToItems() []entities.OrderItem {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			ProductID:   strings.TrimSpace(it.ProductID),
			ProductName: strings.TrimSpace(it.ProductName),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.UnitPrice * float64(it.Quantity),
		})
	}
	return items
}

func (r AddressRequest) ToAddress() entities.Address {
	return entities.Address{
		Line1:   strings.TrimSpace(r.Line1),
		Line2:   strings.TrimSpace(r.Line2),
		City:    strings.TrimSpace(r.City),
		Zip:     strings.TrimSpace(r.Zip),
		Country: strings.TrimSpace(r.Country),
	}
}

// OrderTransitionRequest asks for one lifecycle edge.
type OrderTransitionRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

func (r OrderTransitionRequest) ResolveStatus() (entities.OrderStatus, bool) {
	s := entities.OrderStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	return s, s.IsValid()
}

// RefundRequest carries the optional reason for an admin refund.
type RefundRequest struct {
	Note string `json:"note"`
}
