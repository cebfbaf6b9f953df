package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/domain/repositories"
	"velora.backend/pkg/logger"
	"velora.backend/pkg/metrics"
)

// KycUsecase handles identity verification business logic
type KycUsecase struct {
	kycRepo repositories.KycRepository
}

// NewKycUsecase creates a new KYC usecase
func NewKycUsecase(kycRepo repositories.KycRepository) *KycUsecase {
	return &KycUsecase{kycRepo: kycRepo}
}

// Submit files or refiles the user's verification record. A resubmission
// replaces the previous one and lands back in PENDING regardless of the
// earlier decision.
func (u *KycUsecase) Submit(ctx context.Context, userID uuid.UUID, input *entities.KycSubmitInput) (*entities.KycRecord, error) {
	if input.FullName == "" {
		return nil, domainerrors.BadRequest("full name is required")
	}
	if input.FrontImageURL == "" {
		return nil, domainerrors.BadRequest("document front image is required")
	}
	if input.FaceImageURL == "" {
		return nil, domainerrors.BadRequest("face photo is required")
	}
	if input.DocumentType != "" &&
		input.DocumentType != entities.DocumentNationalID &&
		input.DocumentType != entities.DocumentPassport {
		return nil, domainerrors.BadRequest("unknown document type")
	}

	record := &entities.KycRecord{
		UserID:         userID,
		FullName:       input.FullName,
		GuardianName:   input.GuardianName,
		DocumentType:   input.DocumentType,
		DocumentNumber: input.DocumentNumber,
		DocumentExpiry: input.DocumentExpiry,
		FrontImageURL:  input.FrontImageURL,
		BackImageURL:   input.BackImageURL,
		FaceImageURL:   input.FaceImageURL,
	}
	if err := u.kycRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	if metrics.KycSubmissionsTotal != nil {
		metrics.KycSubmissionsTotal.Inc()
	}
	logger.Info(ctx, "kyc submitted", zap.String("user_id", userID.String()))
	return record, nil
}

// Status returns the user's verification state. A user who never submitted
// gets NOT_SUBMITTED rather than an error.
func (u *KycUsecase) Status(ctx context.Context, userID uuid.UUID) (*entities.KycStatusResponse, error) {
	record, err := u.kycRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return &entities.KycStatusResponse{Status: entities.KycNotSubmitted}, nil
		}
		return nil, err
	}

	resp := &entities.KycStatusResponse{Status: record.Status}
	if record.Status == entities.KycRejected {
		resp.RejectionReason = record.RejectionReason.String
	}
	return resp, nil
}

// List returns submissions for admin review, optionally filtered by status
func (u *KycUsecase) List(ctx context.Context, status string) ([]*entities.KycListItem, error) {
	switch entities.KycStatus(status) {
	case "", entities.KycPending, entities.KycApproved, entities.KycRejected:
	default:
		return nil, domainerrors.BadRequest("unknown status filter")
	}
	return u.kycRepo.List(ctx, entities.KycStatus(status))
}

// Decide records an admin approval or rejection
func (u *KycUsecase) Decide(ctx context.Context, id uuid.UUID, input *entities.KycDecisionInput) (*entities.KycRecord, error) {
	if input.Status != entities.KycApproved && input.Status != entities.KycRejected {
		return nil, domainerrors.BadRequest("decision must be APPROVED or REJECTED")
	}

	if err := u.kycRepo.SetDecision(ctx, id, input.Status, input.Reason); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("kyc record not found")
		}
		return nil, err
	}

	metrics.RecordKycDecision(string(input.Status))
	logger.Info(ctx, "kyc decision recorded",
		zap.String("record_id", id.String()),
		zap.String("decision", string(input.Status)))
	return u.kycRepo.GetByID(ctx, id)
}
