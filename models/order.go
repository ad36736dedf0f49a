package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"    // order placed, awaiting fulfilment
	OrderStatusProcessing OrderStatus = "processing" // being packed for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // customer received the items
)

// ParseOrderStatus maps a request string onto the three-state workflow.
func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(s) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusProcessing):
		return OrderStatusProcessing, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ShippingAddress is captured once at checkout and kept with the order.
type ShippingAddress struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zipCode"`
}

// Order is immutable after creation except for Status. Items, Total and
// TrackingID record what was sold at the price it was sold for; later
// edits to the catalog never rewrite order history.
type Order struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   string `gorm:"not null;index" json:"user_id"`
	// Buyer snapshot, frozen at checkout.
	UserName        string          `json:"user_name"`
	UserEmail       string          `json:"user_email"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Total           float64         `gorm:"not null" json:"total"`
	Status          OrderStatus     `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	TrackingID      string          `gorm:"uniqueIndex;not null" json:"tracking_id"`
	ShippingAddress ShippingAddress `gorm:"embedded;embeddedPrefix:ship_" json:"shipping_address"`
	PaymentMethod   string          `json:"payment_method"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem denormalizes the product fields needed to display the order
// later, even if the product is repriced or deleted.
type OrderItem struct {
	ID           uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID      uint    `gorm:"index" json:"order_id"`
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
}
