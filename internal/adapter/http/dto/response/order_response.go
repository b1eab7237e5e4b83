package response

import (
	"time"

	"storefront/internal/domain/entities"
	"storefront/internal/usecase"
)

type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Amount      float64 `json:"amount"`
}

type AddressResponse struct {
	Line1   string `json:"line1,omitempty"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
	Country string `json:"country,omitempty"`
}

type StatusHistoryResponse struct {
	Status    string    `json:"status"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type PaymentHistoryResponse struct {
	State     string    `json:"state"`
	Method    string    `json:"method"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	Note      string    `json:"note,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderResponse is the full order view. ConsistencyWarning is present only
// when canonical and legacy storage disagreed at read time.
type OrderResponse struct {
	ID                 string                   `json:"id"`
	CustomerID         string                   `json:"customer_id"`
	CustomerEmail      string                   `json:"customer_email,omitempty"`
	Items              []OrderItemResponse      `json:"items"`
	TotalAmount        float64                  `json:"total_amount"`
	Status             string                   `json:"status"`
	PaymentState       string                   `json:"payment_state"`
	PaymentMethod      string                   `json:"payment_method"`
	CheckoutSessionID  string                   `json:"checkout_session_id,omitempty"`
	ShippingAddress    AddressResponse          `json:"shipping_address"`
	StatusHistory      []StatusHistoryResponse  `json:"status_history"`
	PaymentHistory     []PaymentHistoryResponse `json:"payment_history"`
	Version            int64                    `json:"version"`
	CreatedAt          time.Time                `json:"created_at"`
	UpdatedAt          time.Time                `json:"updated_at"`
	ConsistencyWarning string                   `json:"consistency_warning,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Amount:      it.Amount,
		})
	}
	statusHistory := make([]StatusHistoryResponse, 0, len(o.StatusHistory))
	for _, e := range o.StatusHistory {
		statusHistory = append(statusHistory, StatusHistoryResponse{
			Status:    string(e.Status),
			ActorID:   e.ActorID,
			ActorRole: string(e.ActorRole),
			Note:      e.Note,
			Timestamp: e.Timestamp,
		})
	}
	paymentHistory := make([]PaymentHistoryResponse, 0, len(o.PaymentHistory))
	for _, e := range o.PaymentHistory {
		paymentHistory = append(paymentHistory, PaymentHistoryResponse{
			State:     string(e.State),
			Method:    string(e.Method),
			ActorID:   e.ActorID,
			ActorRole: string(e.ActorRole),
			Note:      e.Note,
			Timestamp: e.Timestamp,
		})
	}
	return OrderResponse{
		ID:                o.ID,
		CustomerID:        o.CustomerID,
		CustomerEmail:     o.CustomerEmail,
		Items:             items,
		TotalAmount:       o.TotalAmount,
		Status:            string(o.Status),
		PaymentState:      string(o.PaymentState),
		PaymentMethod:     string(o.PaymentMethod),
		CheckoutSessionID: o.CheckoutSessionID,
		ShippingAddress: AddressResponse{
			Line1:   o.ShippingAddress.Line1,
			Line2:   o.ShippingAddress.Line2,
			City:    o.ShippingAddress.City,
			Zip:     o.ShippingAddress.Zip,
			Country: o.ShippingAddress.Country,
		},
		StatusHistory:  statusHistory,
		PaymentHistory: paymentHistory,
		Version:        o.Version,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromTransitionResult(r usecase.TransitionResult) OrderResponse {
	resp := FromOrder(r.Order)
	resp.ConsistencyWarning = r.ConsistencyWarning
	return resp
}
