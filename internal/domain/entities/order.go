package entities

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the order lifecycle
type OrderStatus string

const (
	OrderPlaced    OrderStatus = "PLACED"
	OrderPaid      OrderStatus = "PAID"
	OrderCancelled OrderStatus = "CANCELLED"
)

// Order is a checkout snapshot of a cart. Line items copy the product name
// and price at purchase time so later catalog edits don't rewrite history.
type Order struct {
	ID         uuid.UUID   `json:"id"`
	UserID     uuid.UUID   `json:"-"`
	Items      []OrderItem `json:"items"`
	Total      float64     `json:"total"`
	Status     OrderStatus `json:"status"`
	PaymentRef string      `json:"paymentRef,omitempty"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
}

// OrderItem is one purchased line
type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	OrderID     uuid.UUID `json:"-"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	UnitPrice   float64   `json:"unitPrice"`
	Size        string    `json:"size"`
	Quantity    int       `json:"quantity"`
}
