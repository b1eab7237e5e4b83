package response

import (
	"time"

	"storefront/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string    `json:"id"`
	Scope     string    `json:"scope"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	EntityRef string    `json:"entity_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Scope:     string(n.Scope),
		Type:      string(n.Type),
		Title:     n.Title,
		Body:      n.Body,
		Read:      n.Read,
		EntityRef: n.EntityRef,
		CreatedAt: n.CreatedAt,
	}
}

func FromNotifications(ns []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(ns))
	for _, n := range ns {
		out = append(out, FromNotification(n))
	}
	return out
}
