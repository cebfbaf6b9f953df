package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"velora.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	SetResetCode(ctx context.Context, id uuid.UUID, code string, expiry time.Time) error
	ClearResetCode(ctx context.Context, id uuid.UUID) error
	ClearExpiredResetCodes(ctx context.Context, before time.Time) (int64, error)
	List(ctx context.Context, search string) ([]*entities.User, error)
	Recent(ctx context.Context, limit int) ([]*entities.User, error)
	Count(ctx context.Context) (int64, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}
