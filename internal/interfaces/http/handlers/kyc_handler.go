package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/storage"
	"velora.backend/internal/interfaces/http/middleware"
	"velora.backend/internal/interfaces/http/response"
	"velora.backend/internal/usecases"
)

// KycHandler handles identity verification endpoints
type KycHandler struct {
	kycUsecase *usecases.KycUsecase
	store      storage.ImageStore
}

// NewKycHandler creates a new KYC handler
func NewKycHandler(kycUsecase *usecases.KycUsecase, store storage.ImageStore) *KycHandler {
	return &KycHandler{kycUsecase: kycUsecase, store: store}
}

// Submit files a verification request with document images
// POST /api/v1/kyc (multipart/form-data)
func (h *KycHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == uuid.Nil {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	input := entities.KycSubmitInput{
		FullName:       c.PostForm("fullName"),
		GuardianName:   c.PostForm("guardianName"),
		DocumentType:   entities.KycDocumentType(c.PostForm("documentType")),
		DocumentNumber: c.PostForm("documentNumber"),
	}
	if raw := c.PostForm("documentExpiry"); raw != "" {
		expiry, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("documentExpiry must be YYYY-MM-DD"))
			return
		}
		input.DocumentExpiry = null.TimeFrom(expiry)
	}

	// Image URLs always come from uploaded files, never from form fields
	for _, upload := range []struct {
		field string
		dest  *string
	}{
		{"frontImage", &input.FrontImageURL},
		{"backImage", &input.BackImageURL},
		{"faceImage", &input.FaceImageURL},
	} {
		key, err := uploadFormFile(c, h.store, "kyc", upload.field)
		if err != nil {
			response.Error(c, err)
			return
		}
		*upload.dest = key
	}

	record, err := h.kycUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, record)
}

// Status returns the caller's verification state
// GET /api/v1/kyc/status
func (h *KycHandler) Status(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok || userID == uuid.Nil {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	status, err := h.kycUsecase.Status(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, status)
}

// List returns submissions for the admin review queue
// GET /api/v1/admin/kyc?status=PENDING
func (h *KycHandler) List(c *gin.Context) {
	items, err := h.kycUsecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// Decide records an admin approval or rejection
// PATCH /api/v1/admin/kyc/:id
func (h *KycHandler) Decide(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid kyc record id"))
		return
	}

	var input entities.KycDecisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	record, err := h.kycUsecase.Decide(c.Request.Context(), id, &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, record)
}
