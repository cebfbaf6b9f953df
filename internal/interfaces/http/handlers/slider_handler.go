package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/storage"
	"velora.backend/internal/interfaces/http/response"
	"velora.backend/internal/usecases"
)

// SliderHandler handles homepage carousel endpoints
type SliderHandler struct {
	sliderUsecase *usecases.SliderUsecase
	store         storage.ImageStore
}

// NewSliderHandler creates a new slider handler
func NewSliderHandler(sliderUsecase *usecases.SliderUsecase, store storage.ImageStore) *SliderHandler {
	return &SliderHandler{sliderUsecase: sliderUsecase, store: store}
}

// List returns the carousel in display order
// GET /api/v1/slider
func (h *SliderHandler) List(c *gin.Context) {
	images, err := h.sliderUsecase.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": images})
}

// Add uploads an image and appends it to the carousel
// POST /api/v1/admin/slider (multipart/form-data)
func (h *SliderHandler) Add(c *gin.Context) {
	position, _ := strconv.Atoi(c.DefaultPostForm("position", "0"))

	key, err := uploadFormFile(c, h.store, "slider", "image")
	if err != nil {
		response.Error(c, err)
		return
	}

	image, err := h.sliderUsecase.Add(c.Request.Context(), key, position)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, image)
}

// Move changes an image's position
// PATCH /api/v1/admin/slider/:id
func (h *SliderHandler) Move(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid slider image id"))
		return
	}

	var input struct {
		Position int `json:"position"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.sliderUsecase.Move(c.Request.Context(), id, input.Position); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "slider image moved"})
}

// Remove deletes an image from the carousel
// DELETE /api/v1/admin/slider/:id
func (h *SliderHandler) Remove(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid slider image id"))
		return
	}

	if err := h.sliderUsecase.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "slider image removed"})
}
