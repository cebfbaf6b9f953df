package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email           string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name            string     `gorm:"type:varchar(100);not null"`
	PasswordHash    string     `gorm:"type:varchar(255)"`
	Provider        string     `gorm:"type:varchar(50);not null;default:'credentials'"`
	Role            string     `gorm:"type:varchar(50);not null;default:'USER'"`
	ResetCode       *string    `gorm:"type:varchar(6)"`
	ResetCodeExpiry *time.Time `gorm:"type:timestamp"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
