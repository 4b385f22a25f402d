package models

import "gorm.io/gorm"

// Order statuses. CANCELED is reachable from any non-terminal state;
// COMPLETED and CANCELED are terminal.
const (
	StatusReceived   = "RECEIVED"
	StatusProcessing = "PROCESSING"
	StatusShipped    = "SHIPPED"
	StatusCompleted  = "COMPLETED"
	StatusCanceled   = "CANCELED"
)

var orderStatuses = map[string]bool{
	StatusReceived:   true,
	StatusProcessing: true,
	StatusShipped:    true,
	StatusCompleted:  true,
	StatusCanceled:   true,
}

// IsValidStatus reports whether s is one of the five order statuses.
func IsValidStatus(s string) bool { return orderStatuses[s] }

// Order is a customer request. TotalAmount always equals the sum of the
// owned items' amounts; the two are only ever written together in one
// transaction.
type Order struct {
	gorm.Model
	CustomerID  uint        `gorm:"not null;index" json:"customerId"`
	Customer    Customer    `json:"customer,omitempty"`
	Status      string      `gorm:"size:20;default:RECEIVED;index" json:"status"`
	TotalAmount float64     `gorm:"not null;default:0" json:"totalAmount"`
	CreatedByID *uint       `gorm:"index" json:"createdById"` // nil for guest orders
	EditedByID  *uint       `json:"editedById"`
	Items       []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem is owned exclusively by its Order. Edits replace the full set,
// never patch individual rows.
type OrderItem struct {
	gorm.Model
	OrderID   uint    `gorm:"not null;index" json:"orderId"`
	ProductID uint    `gorm:"not null;index" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
	Amount    float64 `gorm:"not null" json:"amount"`
}
