// internal/domain/cart/entity.go
package cart

import "time"

// Line is one cart entry. ProductName, Variation and Price are snapshots
// taken when the line was added, never re-read from the catalog. Two lines
// are the same line iff (ProductID, Variation) match exactly.
type Line struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Variation   string `json:"variation"`
	Price       int64  `json:"price"`
	Quantity    int    `json:"quantity"`
}

// Subtotal returns the line price times quantity
func (l Line) Subtotal() int64 {
	return l.Price * int64(l.Quantity)
}

// SameLine reports whether the line matches the given identity key
func (l Line) SameLine(productID, variation string) bool {
	return l.ProductID == productID && l.Variation == variation
}

// Session is a session-scoped cart. Lines keep insertion order and never
// contain two entries with the same identity key.
type Session struct {
	ID        string    `json:"session_id"`
	Lines     []Line    `json:"lines"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Totals are derived values, recomputed on every read so they can never
// drift from the underlying lines
type Totals struct {
	ItemCount  int   `json:"item_count"`
	TotalPrice int64 `json:"total_price"`
}
