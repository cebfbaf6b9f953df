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
	"velora.backend/pkg/utils"
)

// CatalogUsecase handles product catalog business logic
type CatalogUsecase struct {
	productRepo repositories.ProductRepository
}

// NewCatalogUsecase creates a new catalog usecase
func NewCatalogUsecase(productRepo repositories.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// List returns products matching the filter. The storefront listing only ever
// sees published items; the admin listing passes PublishedOnly false.
func (u *CatalogUsecase) List(ctx context.Context, filter entities.ProductFilter, page utils.PaginationParams) ([]*entities.Product, utils.PaginationMeta, error) {
	products, total, err := u.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return products, utils.CalculateMeta(total, page.Page, page.Limit), nil
}

// Get returns one product
func (u *CatalogUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, err
	}
	return product, nil
}

// Create adds a product to the catalog
func (u *CatalogUsecase) Create(ctx context.Context, input *entities.ProductInput) (*entities.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := productFromInput(input)
	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	logger.Info(ctx, "product created", zap.String("product_id", product.ID.String()))
	return product, nil
}

// Update overwrites a product. Fields absent from the input fall back to the
// stored values so partial multipart updates do not wipe existing data.
func (u *CatalogUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.ProductInput) (*entities.Product, error) {
	existing, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		existing.Name = input.Name
	}
	if input.Description != "" {
		existing.Description = input.Description
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, domainerrors.BadRequest("price must not be negative")
		}
		existing.Price = *input.Price
	}
	if input.Categories != nil {
		existing.Categories = input.Categories
	}
	if input.SubCategories != nil {
		existing.SubCategories = input.SubCategories
	}
	if input.ProductTypes != nil {
		existing.ProductTypes = input.ProductTypes
	}
	if input.Brands != nil {
		existing.Brands = input.Brands
	}
	if input.Sizes != nil {
		existing.Sizes = input.Sizes
	}
	if input.Colors != nil {
		existing.Colors = input.Colors
	}
	if input.ImageURLs != nil {
		existing.ImageURLs = append(existing.ImageURLs, input.ImageURLs...)
	}
	if input.Published != nil {
		existing.Published = *input.Published
	}

	if err := u.productRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("product not found")
		}
		return nil, err
	}
	return existing, nil
}

// Delete removes a product from the catalog
func (u *CatalogUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.productRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("product not found")
		}
		return err
	}
	logger.Info(ctx, "product deleted", zap.String("product_id", id.String()))
	return nil
}

func validateProductInput(input *entities.ProductInput) error {
	if input.Name == "" {
		return domainerrors.BadRequest("product name is required")
	}
	if input.Price != nil && *input.Price < 0 {
		return domainerrors.BadRequest("price must not be negative")
	}
	return nil
}

func productFromInput(input *entities.ProductInput) *entities.Product {
	published := false
	if input.Published != nil {
		published = *input.Published
	}
	var price float64
	if input.Price != nil {
		price = *input.Price
	}
	return &entities.Product{
		Name:          input.Name,
		Description:   input.Description,
		Price:         price,
		Categories:    input.Categories,
		SubCategories: input.SubCategories,
		ProductTypes:  input.ProductTypes,
		Brands:        input.Brands,
		Sizes:         input.Sizes,
		Colors:        input.Colors,
		ImageURLs:     input.ImageURLs,
		Published:     published,
	}
}
