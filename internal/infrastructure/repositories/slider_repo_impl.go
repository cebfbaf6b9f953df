package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/models"
)

// SliderRepository implements homepage carousel operations
type SliderRepository struct {
	db *gorm.DB
}

// NewSliderRepository creates a new slider repository
func NewSliderRepository(db *gorm.DB) *SliderRepository {
	return &SliderRepository{db: db}
}

// Create appends a carousel image
func (r *SliderRepository) Create(ctx context.Context, image *entities.SliderImage) error {
	if image.ID == uuid.Nil {
		image.ID = uuid.New()
	}
	image.CreatedAt = time.Now()

	m := &models.SliderImage{
		ID:        image.ID,
		ImageURL:  image.ImageURL,
		Position:  image.Position,
		CreatedAt: image.CreatedAt,
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// List returns images ordered by position
func (r *SliderRepository) List(ctx context.Context) ([]*entities.SliderImage, error) {
	var imageModels []models.SliderImage
	if err := GetDB(ctx, r.db).WithContext(ctx).Order("position ASC, created_at ASC").Find(&imageModels).Error; err != nil {
		return nil, err
	}

	images := make([]*entities.SliderImage, 0, len(imageModels))
	for i := range imageModels {
		images = append(images, &entities.SliderImage{
			ID:        imageModels[i].ID,
			ImageURL:  imageModels[i].ImageURL,
			Position:  imageModels[i].Position,
			CreatedAt: imageModels[i].CreatedAt,
		})
	}
	return images, nil
}

// UpdatePosition moves an image within the carousel
func (r *SliderRepository) UpdatePosition(ctx context.Context, id uuid.UUID, position int) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.SliderImage{}).
		Where("id = ?", id).
		Update("position", position)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes an image
func (r *SliderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.SliderImage{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}
