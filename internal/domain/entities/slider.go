package entities

import (
	"time"

	"github.com/google/uuid"
)

// SliderImage is one entry of the landing page carousel, ordered by Position
type SliderImage struct {
	ID        uuid.UUID `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"createdAt"`
}
