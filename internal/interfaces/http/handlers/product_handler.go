package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/storage"
	"velora.backend/internal/interfaces/http/response"
	"velora.backend/internal/usecases"
	"velora.backend/pkg/utils"
)

// ProductHandler handles catalog endpoints
type ProductHandler struct {
	catalogUsecase *usecases.CatalogUsecase
	store          storage.ImageStore
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogUsecase *usecases.CatalogUsecase, store storage.ImageStore) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, store: store}
}

func listFilter(c *gin.Context) entities.ProductFilter {
	return entities.ProductFilter{
		Category:    c.Query("category"),
		SubCategory: c.Query("subCategory"),
		ProductType: c.Query("type"),
		Brand:       c.Query("brand"),
		Search:      c.Query("search"),
	}
}

func listPagination(c *gin.Context) utils.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	return utils.GetPaginationParams(page, limit)
}

// List returns published products for the storefront
// GET /api/v1/products
func (h *ProductHandler) List(c *gin.Context) {
	filter := listFilter(c)
	filter.PublishedOnly = true
	h.list(c, filter)
}

// AdminList returns every product including drafts
// GET /api/v1/admin/products
func (h *ProductHandler) AdminList(c *gin.Context) {
	h.list(c, listFilter(c))
}

func (h *ProductHandler) list(c *gin.Context, filter entities.ProductFilter) {
	products, meta, err := h.catalogUsecase.List(c.Request.Context(), filter, listPagination(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"items":      products,
		"pagination": meta,
	})
}

// Get returns one product
// GET /api/v1/products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	product, err := h.catalogUsecase.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// Create adds a product with optional image uploads
// POST /api/v1/admin/products (multipart/form-data)
func (h *ProductHandler) Create(c *gin.Context) {
	input, err := h.bindProductForm(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.catalogUsecase.Create(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, product)
}

// Update edits a product; absent fields keep their stored values
// PUT /api/v1/admin/products/:id (multipart/form-data)
func (h *ProductHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	input, err := h.bindProductForm(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	product, err := h.catalogUsecase.Update(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, product)
}

// Delete removes a product
// DELETE /api/v1/admin/products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	if err := h.catalogUsecase.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "product deleted"})
}

func (h *ProductHandler) bindProductForm(c *gin.Context) (*entities.ProductInput, error) {
	var input entities.ProductInput
	if err := c.ShouldBind(&input); err != nil {
		return nil, domainerrors.BadRequest(err.Error())
	}

	form, err := c.MultipartForm()
	if err != nil {
		// No multipart body; text-only updates are still valid
		return &input, nil
	}

	for _, fileHeader := range form.File["images"] {
		key, err := uploadFileHeader(c, h.store, "products", fileHeader)
		if err != nil {
			return nil, err
		}
		input.ImageURLs = append(input.ImageURLs, key)
	}
	return &input, nil
}
