// Package repository provides the GORM-backed implementations of the
// repository interfaces the order service depends on.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/ojohpeters/Farmers-marketplace/orders"
)

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Repos() orders.Repos {
	return repos(s.db)
}

// Transact runs fn inside one database transaction. Every repository call
// made through the passed Repos joins that transaction, so a failed stock
// decrement or order insert rolls back all earlier decrements.
func (s *Store) Transact(ctx context.Context, fn func(orders.Repos) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(repos(tx))
	})
}

func repos(db *gorm.DB) orders.Repos {
	return orders.Repos{
		Products: &ProductRepo{db: db},
		Orders:   &OrderRepo{db: db},
	}
}
