package models

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Total      float64   `gorm:"not null;default:0"`
	Status     string    `gorm:"type:varchar(50);not null"`
	PaymentRef string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type OrderItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null"`
	ProductName string    `gorm:"type:varchar(255);not null"`
	UnitPrice   float64   `gorm:"not null;default:0"`
	Size        string    `gorm:"type:varchar(50)"`
	Quantity    int       `gorm:"not null;default:1"`
}
