package models

import (
	"time"

	"github.com/google/uuid"
)

// Cart lines are hard-deleted; a soft-delete column would poison the unique
// index that the add-line upsert relies on.
type CartLine struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product_size"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_cart_user_product_size"`
	Size      string    `gorm:"type:varchar(50);not null;default:'';uniqueIndex:idx_cart_user_product_size"`
	Quantity  int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fav_user_product"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_fav_user_product"`
	CreatedAt time.Time
}
