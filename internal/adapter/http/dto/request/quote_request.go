package request

import (
	"strings"

	"storefront/internal/domain/entities"
)

type QuoteItemRequest struct {
	ProductID   string `json:"product_id"`
	Description string `json:"description" binding:"required"`
	Quantity    int    `json:"quantity"`
}

type CreateQuoteRequest struct {
	RequesterEmail string             `json:"requester_email"`
	Description    string             `json:"description" binding:"required"`
	Items          []QuoteItemRequest `json:"items"`
}

func (r CreateQuoteRequest) ToItems() []entities.QuoteItem {
	items := make([]entities.QuoteItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuoteItem{
			ProductID:   strings.TrimSpace(it.ProductID),
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
		})
	}
	return items
}

// QuoteResponseRequest is the admin's priced response.
type QuoteResponseRequest struct {
	Response string `json:"response" binding:"required"`
}

// QuoteTransitionRequest asks for one quotation edge.
type QuoteTransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r QuoteTransitionRequest) ResolveStatus() (entities.QuoteStatus, bool) {
	s := entities.QuoteStatus(strings.ToLower(strings.TrimSpace(r.Status)))
	return s, s.IsValid()
}

// QuoteMessageRequest appends to the negotiation thread.
type QuoteMessageRequest struct {
	Text string `json:"text" binding:"required"`
}
