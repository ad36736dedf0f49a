package orders

import (
	"errors"
	"fmt"
)

// ValidationError reports a checkout request with missing or inconsistent
// fields. Nothing has been written when it is returned.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NotFoundError reports that a referenced record does not exist.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string { return e.Msg }

// InsufficientStockError is returned when a conditional stock decrement
// finds fewer units than the order line requests. The surrounding
// transaction rolls back, so no partial decrements survive.
type InsufficientStockError struct {
	ProductID uint
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product %d (requested %d)", e.ProductID, e.Requested)
}

// InternalError wraps a persistence failure that happened after validation
// passed.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return "Failed to create order: " + e.Err.Error() }

func (e *InternalError) Unwrap() error { return e.Err }

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsNotFound(err error) bool {
	var n *NotFoundError
	return errors.As(err, &n)
}

func IsInsufficientStock(err error) bool {
	var i *InsufficientStockError
	return errors.As(err, &i)
}
