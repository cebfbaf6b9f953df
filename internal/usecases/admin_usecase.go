package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/domain/repositories"
	"velora.backend/pkg/logger"
)

const recentSignupsLimit = 5

// DashboardStats is the admin overview payload
type DashboardStats struct {
	UserCount     int64            `json:"userCount"`
	ProductCount  int64            `json:"productCount"`
	OrderCount    int64            `json:"orderCount"`
	RecentSignups []*entities.User `json:"recentSignups"`
}

// AdminUsecase handles reporting and user administration
type AdminUsecase struct {
	userRepo    repositories.UserRepository
	productRepo repositories.ProductRepository
	orderRepo   repositories.OrderRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(
	userRepo repositories.UserRepository,
	productRepo repositories.ProductRepository,
	orderRepo repositories.OrderRepository,
) *AdminUsecase {
	return &AdminUsecase{
		userRepo:    userRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// Stats assembles the dashboard overview
func (u *AdminUsecase) Stats(ctx context.Context) (*DashboardStats, error) {
	userCount, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	productCount, err := u.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, err := u.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := u.userRepo.Recent(ctx, recentSignupsLimit)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		UserCount:     userCount,
		ProductCount:  productCount,
		OrderCount:    orderCount,
		RecentSignups: recent,
	}, nil
}

// ListUsers returns accounts, optionally filtered by an email/name search term
func (u *AdminUsecase) ListUsers(ctx context.Context, search string) ([]*entities.User, error) {
	return u.userRepo.List(ctx, search)
}

// DeleteUser permanently removes an account
func (u *AdminUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := u.userRepo.HardDelete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound("user not found")
		}
		return err
	}
	logger.Info(ctx, "user deleted by admin", zap.String("user_id", id.String()))
	return nil
}
