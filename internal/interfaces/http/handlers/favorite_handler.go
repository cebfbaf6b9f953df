package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/interfaces/http/response"
	"velora.backend/internal/usecases"
)

// FavoriteHandler handles favorite bookmark endpoints
type FavoriteHandler struct {
	favoriteUsecase *usecases.FavoriteUsecase
}

// NewFavoriteHandler creates a new favorite handler
func NewFavoriteHandler(favoriteUsecase *usecases.FavoriteUsecase) *FavoriteHandler {
	return &FavoriteHandler{favoriteUsecase: favoriteUsecase}
}

// List returns the user's favorites with product details
// GET /api/v1/favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	favs, err := h.favoriteUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": favs})
}

// Add bookmarks a product; repeating it changes nothing
// POST /api/v1/favorites/:productId
func (h *FavoriteHandler) Add(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	if err := h.favoriteUsecase.Add(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"message": "added to favorites"})
}

// Remove drops the bookmark
// DELETE /api/v1/favorites/:productId
func (h *FavoriteHandler) Remove(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid product id"))
		return
	}

	if err := h.favoriteUsecase.Remove(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "removed from favorites"})
}
