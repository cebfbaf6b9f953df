package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
	"velora.backend/internal/usecases"
)

func newCartRouter(userID uuid.UUID, prods *productRepoStub) (*gin.Engine, *cartRepoStub) {
	gin.SetMode(gin.TestMode)
	cartRepo := newCartRepoStub(prods)
	h := NewCartHandler(usecases.NewCartUsecase(cartRepo, prods))

	r := gin.New()
	g := r.Group("/cart", withUser(userID))
	g.GET("", h.List)
	g.POST("", h.Add)
	g.PATCH("/:id", h.UpdateQuantity)
	g.DELETE("/:id", h.Remove)
	return r, cartRepo
}

type cartBody struct {
	Items []*entities.CartLine `json:"items"`
}

func postCartAdd(t *testing.T, r *gin.Engine, productID uuid.UUID, size string, quantity int) *httptest.ResponseRecorder {
	t.Helper()
	body := fmt.Sprintf(`{"productId":%q,"size":%q,"quantity":%d}`, productID, size, quantity)
	req := httptest.NewRequest(http.MethodPost, "/cart", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCartHandler_AddMergesSameProductAndSize(t *testing.T) {
	userID := uuid.New()
	prods := newProductRepoStub()
	product := seedStubProduct(prods, "Linen Shirt", true)
	r, _ := newCartRouter(userID, prods)

	w := postCartAdd(t, r, product.ID, "M", 1)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	w = postCartAdd(t, r, product.ID, "M", 2)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
	}

	var body cartBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal cart: %v", err)
	}
	if len(body.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(body.Items))
	}
	if body.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", body.Items[0].Quantity)
	}
	if body.Items[0].Product == nil || body.Items[0].Product.Name != "Linen Shirt" {
		t.Fatalf("expected product details on line: %+v", body.Items[0])
	}
}

func TestCartHandler_AddDifferentSizesStayDistinct(t *testing.T) {
	userID := uuid.New()
	prods := newProductRepoStub()
	product := seedStubProduct(prods, "Linen Shirt", true)
	r, _ := newCartRouter(userID, prods)

	postCartAdd(t, r, product.ID, "M", 1)
	w := postCartAdd(t, r, product.ID, "L", 1)

	var body cartBody
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal cart: %v", err)
	}
	if len(body.Items) != 2 {
		t.Fatalf("expected two lines, got %d", len(body.Items))
	}
}

func TestCartHandler_AddUnpublishedProductNotFound(t *testing.T) {
	userID := uuid.New()
	prods := newProductRepoStub()
	draft := seedStubProduct(prods, "Unreleased Coat", false)
	r, _ := newCartRouter(userID, prods)

	w := postCartAdd(t, r, draft.ID, "M", 1)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for draft product, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCartHandler_AddUnknownProductNotFound(t *testing.T) {
	userID := uuid.New()
	r, _ := newCartRouter(userID, newProductRepoStub())

	w := postCartAdd(t, r, uuid.New(), "M", 1)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestCartHandler_UpdateQuantityValidation(t *testing.T) {
	userID := uuid.New()
	prods := newProductRepoStub()
	product := seedStubProduct(prods, "Linen Shirt", true)
	r, cartRepo := newCartRouter(userID, prods)

	postCartAdd(t, r, product.ID, "M", 1)
	var lineID uuid.UUID
	for id := range cartRepo.lines {
		lineID = id
	}

	req := httptest.NewRequest(http.MethodPatch, "/cart/"+lineID.String(), bytes.NewBufferString(`{"quantity":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPatch, "/cart/"+lineID.String(), bytes.NewBufferString(`{"quantity":5}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	if cartRepo.lines[lineID].Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", cartRepo.lines[lineID].Quantity)
	}
}

func TestCartHandler_RemoveStrangersLineNotFound(t *testing.T) {
	owner := uuid.New()
	prods := newProductRepoStub()
	product := seedStubProduct(prods, "Linen Shirt", true)
	ownerRouter, cartRepo := newCartRouter(owner, prods)
	postCartAdd(t, ownerRouter, product.ID, "M", 1)

	var lineID uuid.UUID
	for id := range cartRepo.lines {
		lineID = id
	}

	// A different session must not be able to touch the owner's line.
	gin.SetMode(gin.TestMode)
	strangerRouter := gin.New()
	h := NewCartHandler(usecases.NewCartUsecase(cartRepo, prods))
	strangerRouter.DELETE("/cart/:id", withUser(uuid.New()), h.Remove)

	req := httptest.NewRequest(http.MethodDelete, "/cart/"+lineID.String(), nil)
	w := httptest.NewRecorder()
	strangerRouter.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign line, got %d body=%s", w.Code, w.Body.String())
	}
	if _, ok := cartRepo.lines[lineID]; !ok {
		t.Fatal("owner's line must survive a stranger's delete")
	}
}

func TestCartHandler_ListRequiresSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	prods := newProductRepoStub()
	h := NewCartHandler(usecases.NewCartUsecase(newCartRepoStub(prods), prods))

	r := gin.New()
	r.GET("/cart", h.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/cart", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}
