package usecases

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/domain/repositories"
	"velora.backend/pkg/logger"
	"velora.backend/pkg/metrics"
)

// OrderUsecase handles checkout and order history
type OrderUsecase struct {
	orderRepo repositories.OrderRepository
	cartRepo  repositories.CartRepository
	uow       repositories.UnitOfWork
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(orderRepo repositories.OrderRepository, cartRepo repositories.CartRepository, uow repositories.UnitOfWork) *OrderUsecase {
	return &OrderUsecase{orderRepo: orderRepo, cartRepo: cartRepo, uow: uow}
}

// Checkout converts the user's cart into an order. Item names and prices are
// snapshotted at purchase time, so later catalog edits do not rewrite order
// history. The order insert and the cart wipe commit together or not at all.
// Payment capture is simulated; the reference it returns stands in for a real
// processor's id.
func (u *OrderUsecase) Checkout(ctx context.Context, userID uuid.UUID) (*entities.Order, error) {
	lines, err := u.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, domainerrors.NewAppError(400, domainerrors.CodeValidation,
			"cart is empty", domainerrors.ErrEmptyCart)
	}

	order := &entities.Order{
		UserID: userID,
		Status: entities.OrderPaid,
	}
	for _, line := range lines {
		if line.Product == nil {
			// Product was removed from the catalog after it was carted
			return nil, domainerrors.NewAppError(409, domainerrors.CodeConflict,
				"a product in the cart is no longer available", domainerrors.ErrNotFound)
		}
		order.Items = append(order.Items, entities.OrderItem{
			ProductID:   line.ProductID,
			ProductName: line.Product.Name,
			UnitPrice:   line.Product.Price,
			Size:        line.Size,
			Quantity:    line.Quantity,
		})
		order.Total += line.Product.Price * float64(line.Quantity)
	}
	order.PaymentRef = simulatePayment(order)

	err = u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.Create(txCtx, order); err != nil {
			return err
		}
		return u.cartRepo.ClearByUser(txCtx, userID)
	})
	if err != nil {
		return nil, err
	}

	if metrics.OrdersPlacedTotal != nil {
		metrics.OrdersPlacedTotal.Inc()
	}
	logger.Info(ctx, "order placed",
		zap.String("order_id", order.ID.String()),
		zap.Float64("total", order.Total))
	return order, nil
}

// List returns the user's order history newest first
func (u *OrderUsecase) List(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	return u.orderRepo.ListByUser(ctx, userID)
}

// Get returns one order. Ownership comes from the session, never from the
// request, so reading someone else's order id yields 404.
func (u *OrderUsecase) Get(ctx context.Context, userID, orderID uuid.UUID) (*entities.Order, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound("order not found")
		}
		return nil, err
	}
	if order.UserID != userID {
		return nil, domainerrors.NotFound("order not found")
	}
	return order, nil
}

func simulatePayment(order *entities.Order) string {
	return fmt.Sprintf("SIM-%s", uuid.New().String())
}
