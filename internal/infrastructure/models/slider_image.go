package models

import (
	"time"

	"github.com/google/uuid"
)

type SliderImage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ImageURL  string    `gorm:"type:text;not null"`
	Position  int       `gorm:"not null;default:0"`
	CreatedAt time.Time
}
