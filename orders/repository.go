package orders

import (
	"context"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

// ProductRepository is the slice of the catalog the placement service
// needs: bulk reads plus an atomic conditional stock decrement.
type ProductRepository interface {
	FindByIDs(ctx context.Context, ids []uint) ([]models.Product, error)
	// DecrementQuantity subtracts amount from the product's stock only if
	// at least that many units remain, in a single atomic operation.
	// It returns *InsufficientStockError when the precondition fails.
	DecrementQuantity(ctx context.Context, id uint, amount int) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id uint) (*models.Order, error)
	FindByTrackingID(ctx context.Context, trackingID string) (*models.Order, error)
	FindByUser(ctx context.Context, userID string) ([]models.Order, error)
	FindAll(ctx context.Context, status models.OrderStatus) ([]models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
}

// Repos bundles the repositories visible inside one unit of work.
type Repos struct {
	Products ProductRepository
	Orders   OrderRepository
}

// Store provides repository access. Calls made through the Repos passed to
// Transact's callback share one transaction and roll back together when
// the callback returns an error.
type Store interface {
	Repos() Repos
	Transact(ctx context.Context, fn func(Repos) error) error
}
