package entities

import (
	"time"

	"github.com/google/uuid"
)

// CartLine is one (user, product, size) row in a shopping cart. At most one
// line exists per combination; adding the same combination again increments
// the quantity.
type CartLine struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	ProductID uuid.UUID `json:"productId"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CartAddInput adds a product to the cart. Quantity defaults to 1 when the
// client omits it or sends something non-numeric.
type CartAddInput struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Size      string    `json:"size"`
	Quantity  int       `json:"quantity"`
}

// CartUpdateInput overwrites a line's quantity
type CartUpdateInput struct {
	Quantity int `json:"quantity"`
}
