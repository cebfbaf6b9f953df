package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/interfaces/http/response"
	"velora.backend/internal/usecases"
)

// OrderHandler handles checkout and order history endpoints
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// Checkout turns the cart into an order
// POST /api/v1/orders/checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	order, err := h.orderUsecase.Checkout(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, order)
}

// List returns the caller's order history
// GET /api/v1/orders
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	orders, err := h.orderUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": orders})
}

// Get returns one of the caller's orders
// GET /api/v1/orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := sessionUser(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid order id"))
		return
	}

	order, err := h.orderUsecase.Get(c.Request.Context(), userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, order)
}
