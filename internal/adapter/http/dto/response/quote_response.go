package response

import (
	"time"

	"storefront/internal/domain/entities"
)

type QuoteItemResponse struct {
	ProductID   string `json:"product_id,omitempty"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type QuoteMessageResponse struct {
	SenderID   string    `json:"sender_id"`
	SenderRole string    `json:"sender_role"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

type QuoteResponse struct {
	ID             string                 `json:"id"`
	RequesterID    string                 `json:"requester_id"`
	RequesterEmail string                 `json:"requester_email,omitempty"`
	Description    string                 `json:"description"`
	Items          []QuoteItemResponse    `json:"items"`
	AdminResponse  string                 `json:"admin_response,omitempty"`
	Status         string                 `json:"status"`
	Messages       []QuoteMessageResponse `json:"messages"`
	Version        int64                  `json:"version"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, QuoteItemResponse{
			ProductID:   it.ProductID,
			Description: it.Description,
			Quantity:    it.Quantity,
		})
	}
	messages := make([]QuoteMessageResponse, 0, len(q.Messages))
	for _, m := range q.Messages {
		messages = append(messages, QuoteMessageResponse{
			SenderID:   m.SenderID,
			SenderRole: string(m.SenderRole),
			Text:       m.Text,
			Timestamp:  m.Timestamp,
		})
	}
	return QuoteResponse{
		ID:             q.ID,
		RequesterID:    q.RequesterID,
		RequesterEmail: q.RequesterEmail,
		Description:    q.Description,
		Items:          items,
		AdminResponse:  q.AdminResponse,
		Status:         string(q.Status),
		Messages:       messages,
		Version:        q.Version,
		CreatedAt:      q.CreatedAt,
		UpdatedAt:      q.UpdatedAt,
	}
}
