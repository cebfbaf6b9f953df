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

// FavoriteRepository implements favorite bookmark operations
type FavoriteRepository struct {
	db          *gorm.DB
	productRepo *ProductRepository
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db *gorm.DB, productRepo *ProductRepository) *FavoriteRepository {
	return &FavoriteRepository{db: db, productRepo: productRepo}
}

// Add bookmarks a product. Adding the same (user, product) pair again is a
// no-op thanks to DO NOTHING on the unique index.
func (r *FavoriteRepository) Add(ctx context.Context, fav *entities.Favorite) error {
	if fav.ID == uuid.Nil {
		fav.ID = uuid.New()
	}
	m := &models.Favorite{
		ID:        fav.ID,
		UserID:    fav.UserID,
		ProductID: fav.ProductID,
		CreatedAt: time.Now(),
	}

	return GetDB(ctx, r.db).WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoNothing: true,
	}).Create(m).Error
}

// Remove deletes the bookmark; zero matched rows is not an error
func (r *FavoriteRepository) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return GetDB(ctx, r.db).WithContext(ctx).
		Delete(&models.Favorite{}, "user_id = ? AND product_id = ?", userID, productID).Error
}

// ListByUser lists the user's favorites newest first with products joined
func (r *FavoriteRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	var favModels []models.Favorite
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&favModels).Error; err != nil {
		return nil, err
	}

	favs := make([]*entities.Favorite, 0, len(favModels))
	for i := range favModels {
		fav := &entities.Favorite{
			ID:        favModels[i].ID,
			UserID:    favModels[i].UserID,
			ProductID: favModels[i].ProductID,
			CreatedAt: favModels[i].CreatedAt,
		}
		product, err := r.productRepo.GetByID(ctx, fav.ProductID)
		if err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return nil, err
		}
		fav.Product = product
		favs = append(favs, fav)
	}
	return favs, nil
}

// CountByProduct counts rows for a (user, product) pair
func (r *FavoriteRepository) CountByProduct(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Favorite{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Count(&count).Error
	return count, err
}
