package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/models"
)

// KycRepository implements KYC record operations
type KycRepository struct {
	db *gorm.DB
}

// NewKycRepository creates a new KYC repository
func NewKycRepository(db *gorm.DB) *KycRepository {
	return &KycRepository{db: db}
}

// Upsert creates or overwrites the user's record. The conflict target is the
// unique user_id index; on resubmission every field is replaced, status is
// forced back to PENDING and the rejection reason is cleared.
func (r *KycRepository) Upsert(ctx context.Context, record *entities.KycRecord) error {
	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	now := time.Now()

	m := &models.KycRecord{
		ID:             record.ID,
		UserID:         record.UserID,
		FullName:       record.FullName,
		GuardianName:   record.GuardianName,
		DocumentType:   string(record.DocumentType),
		DocumentNumber: record.DocumentNumber,
		FrontImageURL:  record.FrontImageURL,
		BackImageURL:   record.BackImageURL,
		FaceImageURL:   record.FaceImageURL,
		Status:         string(entities.KycPending),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if record.DocumentExpiry.Valid {
		m.DocumentExpiry = &record.DocumentExpiry.Time
	}

	record.Status = entities.KycPending
	record.RejectionReason = null.String{}

	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"full_name":        m.FullName,
			"guardian_name":    m.GuardianName,
			"document_type":    m.DocumentType,
			"document_number":  m.DocumentNumber,
			"document_expiry":  m.DocumentExpiry,
			"front_image_url":  m.FrontImageURL,
			"back_image_url":   m.BackImageURL,
			"face_image_url":   m.FaceImageURL,
			"status":           string(entities.KycPending),
			"rejection_reason": nil,
			"updated_at":       now,
		}),
	}).Create(m).Error
}

// GetByUserID gets the record owned by a user
func (r *KycRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KycRecord, error) {
	var m models.KycRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return kycToEntity(&m), nil
}

// GetByID gets a record by its id
func (r *KycRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.KycRecord, error) {
	var m models.KycRecord
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return kycToEntity(&m), nil
}

type kycRow struct {
	models.KycRecord
	UserEmail string
	UserName  string
}

// List returns records newest first with owner identity, optionally filtered
func (r *KycRepository) List(ctx context.Context, status entities.KycStatus) ([]*entities.KycListItem, error) {
	var rows []kycRow
	query := GetDB(ctx, r.db).WithContext(ctx).
		Table("kyc_records").
		Select("kyc_records.*, users.email AS user_email, users.name AS user_name").
		Joins("JOIN users ON users.id = kyc_records.user_id").
		Order("kyc_records.created_at DESC")

	if status != "" {
		query = query.Where("kyc_records.status = ?", string(status))
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.KycListItem, 0, len(rows))
	for i := range rows {
		items = append(items, &entities.KycListItem{
			Record:    kycToEntity(&rows[i].KycRecord),
			UserEmail: rows[i].UserEmail,
			UserName:  rows[i].UserName,
		})
	}
	return items, nil
}

// SetDecision stores an admin decision. The reason survives only for
// REJECTED; approving always nulls it.
func (r *KycRepository) SetDecision(ctx context.Context, id uuid.UUID, status entities.KycStatus, reason string) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.KycRejected && reason != "" {
		updates["rejection_reason"] = reason
	} else {
		updates["rejection_reason"] = nil
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.KycRecord{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func kycToEntity(m *models.KycRecord) *entities.KycRecord {
	rec := &entities.KycRecord{
		ID:             m.ID,
		UserID:         m.UserID,
		FullName:       m.FullName,
		GuardianName:   m.GuardianName,
		DocumentType:   entities.KycDocumentType(m.DocumentType),
		DocumentNumber: m.DocumentNumber,
		FrontImageURL:  m.FrontImageURL,
		BackImageURL:   m.BackImageURL,
		FaceImageURL:   m.FaceImageURL,
		Status:         entities.KycStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	if m.DocumentExpiry != nil {
		rec.DocumentExpiry = null.TimeFromPtr(m.DocumentExpiry)
	}
	if m.RejectionReason != nil {
		rec.RejectionReason = null.StringFromPtr(m.RejectionReason)
	}
	return rec
}
