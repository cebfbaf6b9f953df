package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/domain/repositories"
)

// FavoriteUsecase handles favorite bookmark business logic
type FavoriteUsecase struct {
	favoriteRepo repositories.FavoriteRepository
	productRepo  repositories.ProductRepository
}

// NewFavoriteUsecase creates a new favorite usecase
func NewFavoriteUsecase(favoriteRepo repositories.FavoriteRepository, productRepo repositories.ProductRepository) *FavoriteUsecase {
	return &FavoriteUsecase{favoriteRepo: favoriteRepo, productRepo: productRepo}
}

// Add bookmarks a product. Favoriting something twice is a no-op.
func (u *FavoriteUsecase) Add(ctx context.Context, userID, productID uuid.UUID) error {
	if _, err := u.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("product not found")
		}
		return err
	}
	return u.favoriteRepo.Add(ctx, &entities.Favorite{UserID: userID, ProductID: productID})
}

// Remove drops the bookmark; removing one that does not exist succeeds
func (u *FavoriteUsecase) Remove(ctx context.Context, userID, productID uuid.UUID) error {
	return u.favoriteRepo.Remove(ctx, userID, productID)
}

// List returns the user's favorites with product details
func (u *FavoriteUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error) {
	return u.favoriteRepo.ListByUser(ctx, userID)
}
