package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
	"velora.backend/internal/usecases"
)

func newOrderRouter(userID uuid.UUID, prods *productRepoStub) (*gin.Engine, *cartRepoStub, *orderRepoStub) {
	gin.SetMode(gin.TestMode)
	cartRepo := newCartRepoStub(prods)
	orderRepo := newOrderRepoStub()
	h := NewOrderHandler(usecases.NewOrderUsecase(orderRepo, cartRepo, uowStub{}))

	r := gin.New()
	g := r.Group("/orders", withUser(userID))
	g.POST("/checkout", h.Checkout)
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	return r, cartRepo, orderRepo
}

func TestOrderHandler_CheckoutEmptiesCart(t *testing.T) {
	userID := uuid.New()
	prods := newProductRepoStub()
	product := seedStubProduct(prods, "Linen Shirt", true)
	r, cartRepo, orderRepo := newOrderRouter(userID, prods)

	cartRepo.AddLine(context.Background(), &entities.CartLine{UserID: userID, ProductID: product.ID, Size: "M", Quantity: 2})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/checkout", nil))
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var order entities.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("unmarshal order: %v", err)
	}
	if order.Status != entities.OrderPaid {
		t.Fatalf("expected PAID, got %s", order.Status)
	}
	if order.Total != 2*product.Price {
		t.Fatalf("expected total %.2f, got %.2f", 2*product.Price, order.Total)
	}
	if len(order.Items) != 1 || order.Items[0].ProductName != "Linen Shirt" {
		t.Fatalf("order items must snapshot the product: %+v", order.Items)
	}
	if order.PaymentRef == "" {
		t.Fatal("expected a payment reference")
	}
	if len(cartRepo.lines) != 0 {
		t.Fatalf("cart must be cleared after checkout, %d lines left", len(cartRepo.lines))
	}
	if len(orderRepo.orders) != 1 {
		t.Fatalf("expected one stored order, got %d", len(orderRepo.orders))
	}
}

func TestOrderHandler_CheckoutEmptyCartRejected(t *testing.T) {
	r, _, _ := newOrderRouter(uuid.New(), newProductRepoStub())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/orders/checkout", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty cart, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestOrderHandler_GetForeignOrderIs404(t *testing.T) {
	owner := uuid.New()
	prods := newProductRepoStub()
	r, _, orderRepo := newOrderRouter(uuid.New(), prods)

	order := &entities.Order{ID: uuid.New(), UserID: owner, Total: 10}
	orderRepo.orders[order.ID] = order

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders/"+order.ID.String(), nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("foreign orders must look missing, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestOrderHandler_ListReturnsOwnOrders(t *testing.T) {
	userID := uuid.New()
	r, _, orderRepo := newOrderRouter(userID, newProductRepoStub())

	mine := &entities.Order{ID: uuid.New(), UserID: userID, Total: 25}
	theirs := &entities.Order{ID: uuid.New(), UserID: uuid.New(), Total: 99}
	orderRepo.orders[mine.ID] = mine
	orderRepo.orders[theirs.ID] = theirs

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/orders", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}

	var body struct {
		Items []*entities.Order `json:"items"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal orders: %v", err)
	}
	if len(body.Items) != 1 || body.Items[0].ID != mine.ID {
		t.Fatalf("expected only the caller's orders: %s", w.Body.String())
	}
}
