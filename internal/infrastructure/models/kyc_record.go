package models

import (
	"time"

	"github.com/google/uuid"
)

type KycRecord struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID  `gorm:"type:uuid;uniqueIndex;not null"`
	FullName        string     `gorm:"type:varchar(200);not null"`
	GuardianName    string     `gorm:"type:varchar(200)"`
	DocumentType    string     `gorm:"type:varchar(50)"`
	DocumentNumber  string     `gorm:"type:varchar(100)"`
	DocumentExpiry  *time.Time `gorm:"type:timestamp"`
	FrontImageURL   string     `gorm:"type:text;not null"`
	BackImageURL    string     `gorm:"type:text"`
	FaceImageURL    string     `gorm:"type:text;not null"`
	Status          string     `gorm:"type:varchar(50);not null;default:'PENDING'"`
	RejectionReason *string    `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
