package entities

// LegacyOrderRecord is an order found in the pre-migration representation:
// an array entry embedded in the owning user's document. Superseded is set
// once the order has been promoted to canonical storage; superseded entries
// are kept for audit but never mutated again.
type LegacyOrderRecord struct {
	UserID     string `json:"user_id"`
	Order      Order  `json:"order"`
	Superseded bool   `json:"superseded"`
}
