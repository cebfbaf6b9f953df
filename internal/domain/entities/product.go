package entities

import (
	"time"

	"github.com/google/uuid"
)

// Product represents a catalog item
type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	Categories    []string  `json:"categories"`
	SubCategories []string  `json:"subCategories"`
	ProductTypes  []string  `json:"productTypes"`
	Brands        []string  `json:"brands"`
	Sizes         []string  `json:"sizes"`
	Colors        []string  `json:"colors"`
	ImageURLs     []string  `json:"imageUrls"`
	Published     bool      `json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ProductInput carries admin create/update fields. Image URLs are appended by
// the handler after upload.
type ProductInput struct {
	Name          string   `form:"name"`
	Description   string   `form:"description"`
	Price         *float64 `form:"price"`
	Categories    []string `form:"categories"`
	SubCategories []string `form:"subCategories"`
	ProductTypes  []string `form:"productTypes"`
	Brands        []string `form:"brands"`
	Sizes         []string `form:"sizes"`
	Colors        []string `form:"colors"`
	ImageURLs     []string `form:"-"`
	Published     *bool    `form:"published"`
}

// ProductFilter narrows the public product listing
type ProductFilter struct {
	Category    string `form:"category"`
	SubCategory string `form:"subCategory"`
	ProductType string `form:"type"`
	Brand       string `form:"brand"`
	Search      string `form:"search"`
	// PublishedOnly is forced on for the storefront listing and off for admin
	PublishedOnly bool `form:"-"`
}
