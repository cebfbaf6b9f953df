package repositories

import (
	"context"

	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
)

// CartRepository defines cart line operations
type CartRepository interface {
	// AddLine inserts a (user, product, size) line or atomically increments
	// the quantity of the existing one. Never produces a duplicate row, even
	// under concurrent adds.
	AddLine(ctx context.Context, line *entities.CartLine) error
	GetLine(ctx context.Context, userID, id uuid.UUID) (*entities.CartLine, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, id uuid.UUID, quantity int) error
	DeleteLine(ctx context.Context, userID, id uuid.UUID) error
	ClearByUser(ctx context.Context, userID uuid.UUID) error
}

// FavoriteRepository defines favorite bookmark operations
type FavoriteRepository interface {
	// Add is idempotent: adding an existing (user, product) pair is a no-op.
	Add(ctx context.Context, fav *entities.Favorite) error
	// Remove deletes the pair and tolerates zero matched rows.
	Remove(ctx context.Context, userID, productID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Favorite, error)
	CountByProduct(ctx context.Context, userID, productID uuid.UUID) (int64, error)
}
