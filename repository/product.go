package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/models"
	"github.com/ojohpeters/Farmers-marketplace/orders"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) FindByIDs(ctx context.Context, ids []uint) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// DecrementQuantity is the conditional decrement: the WHERE clause makes
// check-and-subtract a single atomic statement, so two concurrent orders
// can never drive stock negative. Zero rows affected means the product had
// fewer units than requested.
func (r *ProductRepo) DecrementQuantity(ctx context.Context, id uint, amount int) error {
	res := r.db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", id, amount).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &orders.InsufficientStockError{ProductID: id, Requested: amount}
	}
	return nil
}
