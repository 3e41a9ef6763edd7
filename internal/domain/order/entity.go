// internal/domain/order/entity.go
package order

import "time"

// Status represents the order status
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status change is allowed. Only
// pending orders move; completed and cancelled are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusCompleted || next == StatusCancelled)
}

// Order represents a submitted order. Items and TotalPrice are a snapshot
// of the cart at submission time and are never recomputed against the
// catalog. CreatedAt is assigned by the sink, not the composer.
type Order struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	OrderNumber     string    `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	CustomerName    string    `gorm:"not null;size:255" json:"customer_name"`
	CustomerPhone   string    `gorm:"not null;size:50" json:"customer_phone"`
	CustomerAddress string    `gorm:"not null;type:text" json:"customer_address"`
	Notes           string    `gorm:"type:text" json:"notes"`
	TotalPrice      int64     `gorm:"not null" json:"total_price"`
	Status          Status    `gorm:"not null;default:'pending';size:20" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Items []Item `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}

// Item represents one line of an order, denormalized from the cart line
// that produced it
type Item struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	OrderID     uint   `gorm:"not null;index" json:"-"`
	ProductID   string `gorm:"not null;size:64" json:"product_id"`
	ProductName string `gorm:"not null;size:255" json:"product_name"`
	Variation   string `gorm:"not null;size:100" json:"variation"`
	Price       int64  `gorm:"not null" json:"price"`
	Quantity    int    `gorm:"not null" json:"quantity"`
	Subtotal    int64  `gorm:"not null" json:"subtotal"`
}

// TableName overrides
func (Order) TableName() string { return "orders" }
func (Item) TableName() string  { return "order_items" }
