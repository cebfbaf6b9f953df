package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/models"
)

// CartRepository implements cart line operations
type CartRepository struct {
	db          *gorm.DB
	productRepo *ProductRepository
}

// NewCartRepository creates a new cart repository
func NewCartRepository(db *gorm.DB, productRepo *ProductRepository) *CartRepository {
	return &CartRepository{db: db, productRepo: productRepo}
}

// AddLine inserts a line or atomically increments the existing one. The
// conflict target is the unique (user_id, product_id, size) index, so two
// concurrent adds for the same combination can never produce duplicate rows;
// the loser of the insert race lands in the DO UPDATE branch.
func (r *CartRepository) AddLine(ctx context.Context, line *entities.CartLine) error {
	if line.ID == uuid.Nil {
		line.ID = uuid.New()
	}
	if line.Quantity < 1 {
		line.Quantity = 1
	}
	now := time.Now()

	m := &models.CartLine{
		ID:        line.ID,
		UserID:    line.UserID,
		ProductID: line.ProductID,
		Size:      line.Size,
		Quantity:  line.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}, {Name: "size"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_lines.quantity + excluded.quantity"),
			"updated_at": now,
		}),
	}).Create(m).Error
}

// GetLine gets one line scoped to its owner
func (r *CartRepository) GetLine(ctx context.Context, userID, id uuid.UUID) (*entities.CartLine, error) {
	var m models.CartLine
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return cartLineToEntity(&m), nil
}

// ListByUser lists the user's lines newest first with product details joined
func (r *CartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.CartLine, error) {
	var lineModels []models.CartLine
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&lineModels).Error; err != nil {
		return nil, err
	}

	lines := make([]*entities.CartLine, 0, len(lineModels))
	for i := range lineModels {
		line := cartLineToEntity(&lineModels[i])
		product, err := r.productRepo.GetByID(ctx, line.ProductID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		line.Product = product
		lines = append(lines, line)
	}
	return lines, nil
}

// UpdateQuantity overwrites a line's quantity, scoped to its owner
func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.CartLine{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// DeleteLine removes a line, scoped to its owner
func (r *CartRepository) DeleteLine(ctx context.Context, userID, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.CartLine{}, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// ClearByUser removes every line of a user's cart
func (r *CartRepository) ClearByUser(ctx context.Context, userID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).Delete(&models.CartLine{}, "user_id = ?", userID).Error
}

func cartLineToEntity(m *models.CartLine) *entities.CartLine {
	return &entities.CartLine{
		ID:        m.ID,
		UserID:    m.UserID,
		ProductID: m.ProductID,
		Size:      m.Size,
		Quantity:  m.Quantity,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
