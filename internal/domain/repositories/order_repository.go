package repositories

import (
	"context"

	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
)

// OrderRepository defines order operations
type OrderRepository interface {
	Create(ctx context.Context, order *entities.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error)
	Count(ctx context.Context) (int64, error)
}

// UnitOfWork runs a function inside a single database transaction
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
