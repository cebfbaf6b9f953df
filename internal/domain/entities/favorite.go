package entities

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a (user, product) bookmark. Presence is the entire state.
type Favorite struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"-"`
	ProductID uuid.UUID `json:"productId"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
