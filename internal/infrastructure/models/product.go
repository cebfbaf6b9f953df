package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Tag arrays and image lists are stored as JSON-encoded text so the same
// schema works on postgres and the sqlite test driver.
type Product struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Description   string    `gorm:"type:text"`
	Price         float64   `gorm:"not null;default:0"`
	Categories    string    `gorm:"type:text"`
	SubCategories string    `gorm:"type:text"`
	ProductTypes  string    `gorm:"type:text"`
	Brands        string    `gorm:"type:text"`
	Sizes         string    `gorm:"type:text"`
	Colors        string    `gorm:"type:text"`
	ImageURLs     string    `gorm:"type:text"`
	Published     bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
