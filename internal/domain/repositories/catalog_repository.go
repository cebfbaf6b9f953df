package repositories

import (
	"context"

	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
	"velora.backend/pkg/utils"
)

// ProductRepository defines catalog operations
type ProductRepository interface {
	Create(ctx context.Context, product *entities.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error)
	List(ctx context.Context, filter entities.ProductFilter, page utils.PaginationParams) ([]*entities.Product, int64, error)
	Update(ctx context.Context, product *entities.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// SliderRepository defines homepage carousel operations
type SliderRepository interface {
	Create(ctx context.Context, image *entities.SliderImage) error
	List(ctx context.Context) ([]*entities.SliderImage, error)
	UpdatePosition(ctx context.Context, id uuid.UUID, position int) error
	Delete(ctx context.Context, id uuid.UUID) error
}
