package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// KycStatus represents the verification lifecycle of a submission
type KycStatus string

const (
	KycNotSubmitted KycStatus = "NOT_SUBMITTED"
	KycPending      KycStatus = "PENDING"
	KycApproved     KycStatus = "APPROVED"
	KycRejected     KycStatus = "REJECTED"
)

// KycDocumentType represents the identity document kind
type KycDocumentType string

const (
	DocumentNationalID KycDocumentType = "NATIONAL_ID"
	DocumentPassport   KycDocumentType = "PASSPORT"
)

// KycRecord is the one-per-user identity verification record. Resubmission
// overwrites every field, forces status back to PENDING and clears the
// rejection reason.
type KycRecord struct {
	ID              uuid.UUID       `json:"id"`
	UserID          uuid.UUID       `json:"userId"`
	FullName        string          `json:"fullName"`
	GuardianName    string          `json:"guardianName,omitempty"`
	DocumentType    KycDocumentType `json:"documentType,omitempty"`
	DocumentNumber  string          `json:"documentNumber,omitempty"`
	DocumentExpiry  null.Time       `json:"documentExpiry,omitempty"`
	FrontImageURL   string          `json:"frontImageUrl"`
	BackImageURL    string          `json:"backImageUrl,omitempty"`
	FaceImageURL    string          `json:"faceImageUrl"`
	Status          KycStatus       `json:"status"`
	RejectionReason null.String     `json:"rejectionReason,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

// KycSubmitInput carries the user-supplied fields of a submission. Image URLs
// are resolved by the handler after upload, not taken from the client.
type KycSubmitInput struct {
	FullName       string
	GuardianName   string
	DocumentType   KycDocumentType
	DocumentNumber string
	DocumentExpiry null.Time
	FrontImageURL  string
	BackImageURL   string
	FaceImageURL   string
}

// KycDecisionInput is the admin approve/reject payload
type KycDecisionInput struct {
	Status KycStatus `json:"status" binding:"required"`
	Reason string    `json:"reason"`
}

// KycListItem joins a record with its owner for the admin review queue
type KycListItem struct {
	Record    *KycRecord `json:"record"`
	UserEmail string     `json:"userEmail"`
	UserName  string     `json:"userName"`
}

// KycStatusResponse is the user-facing status view
type KycStatusResponse struct {
	Status          KycStatus `json:"status"`
	RejectionReason string    `json:"rejectionReason,omitempty"`
}
