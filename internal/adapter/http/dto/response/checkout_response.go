package response

import "storefront/internal/usecase"

// SessionResponse is the created checkout session handle. The storefront
// redirects the customer to RedirectURL.
type SessionResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
	OrderID     string `json:"order_id"`
}

func FromSession(s usecase.Session) SessionResponse {
	return SessionResponse{
		SessionID:   s.SessionID,
		RedirectURL: s.RedirectURL,
		OrderID:     s.OrderID,
	}
}
