package repositories

import (
	"context"

	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
)

// KycRepository defines KYC record operations
type KycRepository interface {
	// Upsert creates the record for record.UserID or overwrites the existing
	// one, forcing status to PENDING and clearing the rejection reason.
	Upsert(ctx context.Context, record *entities.KycRecord) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KycRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.KycRecord, error)
	// List returns records newest first joined with owner email/name,
	// optionally filtered by status ("" means all).
	List(ctx context.Context, status entities.KycStatus) ([]*entities.KycListItem, error)
	// SetDecision stores APPROVED or REJECTED; reason is persisted only for
	// REJECTED and nulled otherwise.
	SetDecision(ctx context.Context, id uuid.UUID, status entities.KycStatus, reason string) error
}
