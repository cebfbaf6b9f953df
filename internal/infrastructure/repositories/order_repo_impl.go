package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"velora.backend/internal/domain/entities"
	domainerrors "velora.backend/internal/domain/errors"
	"velora.backend/internal/infrastructure/models"
)

// OrderRepository implements order operations
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// Create persists an order with its items
func (r *OrderRepository) Create(ctx context.Context, order *entities.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now

	db := GetDB(ctx, r.db).WithContext(ctx)

	m := &models.Order{
		ID:         order.ID,
		UserID:     order.UserID,
		Total:      order.Total,
		Status:     string(order.Status),
		PaymentRef: order.PaymentRef,
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
	if err := db.Create(m).Error; err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID

		im := &models.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Size:        item.Size,
			Quantity:    item.Quantity,
		}
		if err := db.Create(im).Error; err != nil {
			return err
		}
	}
	return nil
}

// GetByID gets an order with its items
func (r *OrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	var m models.Order
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	order := orderToEntity(&m)
	items, err := r.itemsByOrder(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

// ListByUser lists a user's orders newest first with items
func (r *OrderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Order, error) {
	var orderModels []models.Order
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, err
	}

	orders := make([]*entities.Order, 0, len(orderModels))
	for i := range orderModels {
		order := orderToEntity(&orderModels[i])
		items, err := r.itemsByOrder(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
		orders = append(orders, order)
	}
	return orders, nil
}

// Count returns the total number of orders
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).Model(&models.Order{}).Count(&count).Error
	return count, err
}

func (r *OrderRepository) itemsByOrder(ctx context.Context, orderID uuid.UUID) ([]entities.OrderItem, error) {
	var itemModels []models.OrderItem
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("order_id = ?", orderID).Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]entities.OrderItem, 0, len(itemModels))
	for i := range itemModels {
		items = append(items, entities.OrderItem{
			ID:          itemModels[i].ID,
			OrderID:     itemModels[i].OrderID,
			ProductID:   itemModels[i].ProductID,
			ProductName: itemModels[i].ProductName,
			UnitPrice:   itemModels[i].UnitPrice,
			Size:        itemModels[i].Size,
			Quantity:    itemModels[i].Quantity,
		})
	}
	return items, nil
}

func orderToEntity(m *models.Order) *entities.Order {
	return &entities.Order{
		ID:         m.ID,
		UserID:     m.UserID,
		Total:      m.Total,
		Status:     entities.OrderStatus(m.Status),
		PaymentRef: m.PaymentRef,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
