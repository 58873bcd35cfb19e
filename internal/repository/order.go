package repository

import (
	"context"

	"facade-storefront/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create persists the order and its items in one transaction and
	// returns the generated order id.
	Create(ctx context.Context, order *model.Order, items []*model.OrderItem) (string, error)
	FindByID(ctx context.Context, orderID string) (*model.Order, []*model.OrderItem, error)
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{
		db: db,
	}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order, items []*model.OrderItem) (string, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = model.OrderStatusPending
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		if len(items) == 0 {
			return nil
		}
		for _, item := range items {
			item.OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return "", err
	}

	return order.ID, nil
}

func (r *orderRepoImpl) FindByID(ctx context.Context, orderID string) (*model.Order, []*model.OrderItem, error) {
	var order model.Order
	err := r.db.WithContext(ctx).
		Where("id = ?", orderID).
		First(&order).Error
	if err != nil {
		return nil, nil, err
	}

	var items []*model.OrderItem
	err = r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&items).Error
	if err != nil {
		return nil, nil, err
	}

	return &order, items, nil
}
