package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"not null;check:price >= 0" json:"price"`
	Category    string  `gorm:"index" json:"category"` // category name, matches Category.Name
	// Quantity is the units available for sale. The check constraint backs
	// the application-level guarantee that stock never goes negative.
	Quantity  int            `gorm:"not null;default:0;check:quantity >= 0" json:"quantity"`
	Image     string         `json:"image"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
