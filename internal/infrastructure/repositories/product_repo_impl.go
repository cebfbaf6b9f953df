package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/models"
	"velora.backend/pkg/utils"
)

// ProductRepository implements catalog operations
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create creates a new product
func (r *ProductRepository) Create(ctx context.Context, product *entities.Product) error {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	m, err := productToModel(product)
	if err != nil {
		return err
	}
	return GetDB(ctx, r.db).WithContext(ctx).Create(m).Error
}

// GetByID gets a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Product, error) {
	var m models.Product
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return productToEntity(&m)
}

// List lists products newest first with filters and optional pagination.
// Tag filters match the JSON-encoded arrays with a LIKE on the quoted value,
// which behaves identically on postgres and sqlite.
func (r *ProductRepository) List(ctx context.Context, filter entities.ProductFilter, page utils.PaginationParams) ([]*entities.Product, int64, error) {
	query := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{})

	if filter.PublishedOnly {
		query = query.Where("published = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("categories LIKE ?", tagPattern(filter.Category))
	}
	if filter.SubCategory != "" {
		query = query.Where("sub_categories LIKE ?", tagPattern(filter.SubCategory))
	}
	if filter.ProductType != "" {
		query = query.Where("product_types LIKE ?", tagPattern(filter.ProductType))
	}
	if filter.Brand != "" {
		query = query.Where("brands LIKE ?", tagPattern(filter.Brand))
	}
	if filter.Search != "" {
		term := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", term, term)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if page.Limit > 0 {
		query = query.Limit(page.Limit).Offset(page.CalculateOffset())
	}

	var productModels []models.Product
	if err := query.Find(&productModels).Error; err != nil {
		return nil, 0, err
	}

	products := make([]*entities.Product, 0, len(productModels))
	for i := range productModels {
		p, err := productToEntity(&productModels[i])
		if err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

// Update overwrites a product
func (r *ProductRepository) Update(ctx context.Context, product *entities.Product) error {
	product.UpdatedAt = time.Now()
	m, err := productToModel(product)
	if err != nil {
		return err
	}

	result := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(map[string]interface{}{
		"name":           m.Name,
		"description":    m.Description,
		"price":          m.Price,
		"categories":     m.Categories,
		"sub_categories": m.SubCategories,
		"product_types":  m.ProductTypes,
		"brands":         m.Brands,
		"sizes":          m.Sizes,
		"colors":         m.Colors,
		"image_urls":     m.ImageURLs,
		"published":      m.Published,
		"updated_at":     m.UpdatedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete soft deletes a product
func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := GetDB(ctx, r.db).WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Count returns the total number of products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Product{}).Count(&count).Error
	return count, err
}

func tagPattern(tag string) string {
	// JSON arrays store tags as quoted strings
	return `%"` + tag + `"%`
}

func productToModel(p *entities.Product) (*models.Product, error) {
	m := &models.Product{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Published:   p.Published,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	var err error
	if m.Categories, err = encodeTags(p.Categories); err != nil {
		return nil, err
	}
	if m.SubCategories, err = encodeTags(p.SubCategories); err != nil {
		return nil, err
	}
	if m.ProductTypes, err = encodeTags(p.ProductTypes); err != nil {
		return nil, err
	}
	if m.Brands, err = encodeTags(p.Brands); err != nil {
		return nil, err
	}
	if m.Sizes, err = encodeTags(p.Sizes); err != nil {
		return nil, err
	}
	if m.Colors, err = encodeTags(p.Colors); err != nil {
		return nil, err
	}
	if m.ImageURLs, err = encodeTags(p.ImageURLs); err != nil {
		return nil, err
	}
	return m, nil
}

func productToEntity(m *models.Product) (*entities.Product, error) {
	p := &entities.Product{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Published:   m.Published,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}

	var err error
	if p.Categories, err = decodeTags(m.Categories); err != nil {
		return nil, err
	}
	if p.SubCategories, err = decodeTags(m.SubCategories); err != nil {
		return nil, err
	}
	if p.ProductTypes, err = decodeTags(m.ProductTypes); err != nil {
		return nil, err
	}
	if p.Brands, err = decodeTags(m.Brands); err != nil {
		return nil, err
	}
	if p.Sizes, err = decodeTags(m.Sizes); err != nil {
		return nil, err
	}
	if p.Colors, err = decodeTags(m.Colors); err != nil {
		return nil, err
	}
	if p.ImageURLs, err = decodeTags(m.ImageURLs); err != nil {
		return nil, err
	}
	return p, nil
}

func encodeTags(tags []string) (string, error) {
	if len(tags) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeTags(raw string) ([]string, error) {
	if raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(raw), &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
