package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/domain/repositories"
	"velora.backend/pkg/metrics"
)

// CartUsecase handles shopping cart business logic
type CartUsecase struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

// NewCartUsecase creates a new cart usecase
func NewCartUsecase(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, productRepo: productRepo}
}

// Add puts a product in the user's cart. Adding a (product, size) pair that
// is already present merges into the existing line instead of duplicating it.
// A missing or non-positive quantity counts as 1.
func (u *CartUsecase) Add(ctx context.Context, userID uuid.UUID, input *entities.CartAddInput) ([]*entities.CartLine, error) {
	product, err := u.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, err
	}
	if !product.Published {
		return nil, domainerrors.NotFound("product not found")
	}

	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}

	line := &entities.CartLine{
		UserID:    userID,
		ProductID: input.ProductID,
		Size:      input.Size,
		Quantity:  quantity,
	}
	if err := u.cartRepo.AddLine(ctx, line); err != nil {
		return nil, err
	}

	metrics.RecordCartOperation("add")
	return u.cartRepo.ListByUser(ctx, userID)
}

// List returns the user's cart with product details
func (u *CartUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.CartLine, error) {
	return u.cartRepo.ListByUser(ctx, userID)
}

// UpdateQuantity overwrites a line's quantity. Quantities below 1 are
// rejected; removing a line is its own operation.
func (u *CartUsecase) UpdateQuantity(ctx context.Context, userID, lineID uuid.UUID, input *entities.CartUpdateInput) ([]*entities.CartLine, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.BadRequest("quantity must be at least 1")
	}

	if err := u.cartRepo.UpdateQuantity(ctx, userID, lineID, input.Quantity); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("cart line not found")
		}
		return nil, err
	}

	metrics.RecordCartOperation("update")
	return u.cartRepo.ListByUser(ctx, userID)
}

// Remove deletes a line from the user's cart
func (u *CartUsecase) Remove(ctx context.Context, userID, lineID uuid.UUID) ([]*entities.CartLine, error) {
	if err := u.cartRepo.DeleteLine(ctx, userID, lineID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("cart line not found")
		}
		return nil, err
	}

	metrics.RecordCartOperation("remove")
	return u.cartRepo.ListByUser(ctx, userID)
}
