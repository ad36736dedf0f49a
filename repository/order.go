package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/models"
	"github.com/ojohpeters/Farmers-marketplace/orders"
)

type OrderRepo struct {
	db *gorm.DB
}

func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{db: db}
}

func (r *OrderRepo) Insert(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *OrderRepo) FindByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &order, nil
}

func (r *OrderRepo) FindByTrackingID(ctx context.Context, trackingID string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("tracking_id = ?", trackingID).First(&order).Error
	if err != nil {
		return nil, mapNotFound(err)
	}
	return &order, nil
}

func (r *OrderRepo) FindByUser(ctx context.Context, userID string) ([]models.Order, error) {
	var list []models.Order
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *OrderRepo) FindAll(ctx context.Context, status models.OrderStatus) ([]models.Order, error) {
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var list []models.Order
	if err := q.Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// UpdateStatus overwrites the status unconditionally; the three-state
// workflow allows any transition. Save bumps UpdatedAt.
func (r *OrderRepo) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	var order models.Order
	if err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	order.Status = status
	if err := r.db.WithContext(ctx).Model(&order).Update("status", status).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &orders.NotFoundError{Msg: "Order not found"}
	}
	return err
}
