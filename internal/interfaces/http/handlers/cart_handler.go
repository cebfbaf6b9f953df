package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/interfaces/http/middleware"
	"velora.backend/internal/interfaces/http/response"
	"velora.backend/internal/usecases"
)

// CartHandler handles shopping cart endpoints. Every operation is scoped to
// the session user; cart line ownership is never taken from the request.
type CartHandler struct {
	cartUsecase *usecases.CartUsecase
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartUsecase *usecases.CartUsecase) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase}
}

func sessionUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == uuid.Nil {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return uuid.Nil, false
	}
	return userID, true
}

// List returns the cart with product details
// GET /api/v1/cart
func (h *CartHandler) List(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	lines, err := h.cartUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": lines})
}

// Add puts a product in the cart, merging with an existing line
// POST /api/v1/cart
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	var input entities.CartAddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lines, err := h.cartUsecase.Add(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"items": lines})
}

// UpdateQuantity overwrites a line's quantity
// PATCH /api/v1/cart/:id
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid cart line id"))
		return
	}

	var input entities.CartUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	lines, err := h.cartUsecase.UpdateQuantity(c.Request.Context(), userID, lineID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": lines})
}

// Remove deletes a line from the cart
// DELETE /api/v1/cart/:id
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid cart line id"))
		return
	}

	lines, err := h.cartUsecase.Remove(c.Request.Context(), userID, lineID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": lines})
}
