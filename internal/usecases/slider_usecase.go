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
)

// SliderUsecase handles homepage carousel business logic
type SliderUsecase struct {
	sliderRepo repositories.SliderRepository
}

// NewSliderUsecase creates a new slider usecase
func NewSliderUsecase(sliderRepo repositories.SliderRepository) *SliderUsecase {
	return &SliderUsecase{sliderRepo: sliderRepo}
}

// List returns the carousel images in display order
func (u *SliderUsecase) List(ctx context.Context) ([]*entities.SliderImage, error) {
	return u.sliderRepo.List(ctx)
}

// Add appends an image to the carousel
func (u *SliderUsecase) Add(ctx context.Context, imageURL string, position int) (*entities.SliderImage, error) {
	if imageURL == "" {
		return nil, domainerrors.BadRequest("slider image is required")
	}

	image := &entities.SliderImage{ImageURL: imageURL, Position: position}
	if err := u.sliderRepo.Create(ctx, image); err != nil {
		return nil, err
	}

	logger.Info(ctx, "slider image added", zap.String("image_id", image.ID.String()))
	return image, nil
}

// Move changes an image's position within the carousel
func (u *SliderUsecase) Move(ctx context.Context, id uuid.UUID, position int) error {
	if err := u.sliderRepo.UpdatePosition(ctx, id, position); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("slider image not found")
		}
		return err
	}
	return nil
}

// Remove deletes an image from the carousel
func (u *SliderUsecase) Remove(ctx context.Context, id uuid.UUID) error {
	if err := u.sliderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("slider image not found")
		}
		return err
	}
	return nil
}
