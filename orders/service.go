// Package orders implements order placement and status tracking. Placement
// converts a cart snapshot plus shipping details into a persisted order
// while reserving stock: every line's decrement and the order insert happen
// in one transaction, so a failed line rolls everything back and stock can
// never go negative under concurrent checkouts.
package orders

import (
	"context"
	"errors"
	"log"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

// totalTolerance is the largest client/server total difference accepted,
// one cent in major units.
const totalTolerance = 0.01

// UserSnapshot is the slice of the buyer frozen onto the order.
type UserSnapshot struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Line is one requested order line. Only the product reference and the
// quantity are trusted from the client; names, images and prices come from
// the catalog at placement time.
type Line struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

type PlaceOrderInput struct {
	UserID          string
	User            UserSnapshot
	Items           []Line
	Total           float64
	ShippingAddress models.ShippingAddress
	PaymentMethod   string
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// PlaceOrder validates the checkout request, atomically reserves stock for
// every line, snapshots the authoritative product data into order items and
// persists the order with a fresh tracking ID and status "pending".
//
// The total is recomputed server-side from the catalog prices; the
// client-supplied total is only accepted when it agrees with the
// recomputation.
func (s *Service) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	if err := validatePlaceOrder(in); err != nil {
		return nil, err
	}

	order := &models.Order{
		UserID:          in.UserID,
		UserName:        in.User.Name,
		UserEmail:       in.User.Email,
		Status:          models.OrderStatusPending,
		TrackingID:      NewTrackingID(),
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
	}

	err := s.store.Transact(ctx, func(tx Repos) error {
		ids := distinctProductIDs(in.Items)
		products, err := tx.Products.FindByIDs(ctx, ids)
		if err != nil {
			return &InternalError{Err: err}
		}
		if len(products) != len(ids) {
			return &NotFoundError{Msg: "Some products not found"}
		}
		byID := make(map[uint]models.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		total := decimal.Zero
		items := make([]models.OrderItem, 0, len(in.Items))
		for _, line := range in.Items {
			if err := tx.Products.DecrementQuantity(ctx, line.ProductID, line.Quantity); err != nil {
				return err
			}

			// Snapshot from the just-fetched product, not the client's
			// possibly stale cart copy.
			p := byID[line.ProductID]
			items = append(items, models.OrderItem{
				ProductID:    p.ID,
				ProductName:  p.Name,
				ProductImage: p.Image,
				ProductPrice: p.Price,
				Quantity:     line.Quantity,
			})
			total = total.Add(decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
		}

		serverTotal, _ := total.Float64()
		if math.Abs(serverTotal-in.Total) > totalTolerance {
			return &ValidationError{Msg: "Order total mismatch"}
		}
		order.Total = serverTotal
		order.Items = items

		if err := tx.Orders.Insert(ctx, order); err != nil {
			return &InternalError{Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}

	log.Printf("🧾 Order %s placed for user %s (%d items, total %.2f)",
		order.TrackingID, order.UserID, len(order.Items), order.Total)
	return order, nil
}

// SetStatus moves the order to the given status and bumps UpdatedAt. Any
// status may move to any other; the workflow is intentionally permissive.
// Repeating the same target status is harmless.
func (s *Service) SetStatus(ctx context.Context, orderID uint, status models.OrderStatus) (*models.Order, error) {
	if _, err := models.ParseOrderStatus(string(status)); err != nil {
		return nil, &ValidationError{Msg: "Invalid order status"}
	}
	return s.store.Repos().Orders.UpdateStatus(ctx, orderID, status)
}

// GetOrder resolves ref as a numeric order ID first and falls back to a
// tracking ID lookup.
func (s *Service) GetOrder(ctx context.Context, ref string) (*models.Order, error) {
	repo := s.store.Repos().Orders
	if id, err := strconv.ParseUint(ref, 10, 64); err == nil {
		return repo.FindByID(ctx, uint(id))
	}
	return repo.FindByTrackingID(ctx, ref)
}

// ListOrders returns orders newest first, optionally scoped to a user
// and/or a status.
func (s *Service) ListOrders(ctx context.Context, userID string, status models.OrderStatus) ([]models.Order, error) {
	repo := s.store.Repos().Orders
	if userID != "" {
		list, err := repo.FindByUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		if status == "" {
			return list, nil
		}
		filtered := make([]models.Order, 0, len(list))
		for _, o := range list {
			if o.Status == status {
				filtered = append(filtered, o)
			}
		}
		return filtered, nil
	}
	return repo.FindAll(ctx, status)
}

func validatePlaceOrder(in PlaceOrderInput) error {
	switch {
	case in.UserID == "",
		in.User.ID == "" || in.User.Name == "" || in.User.Email == "",
		len(in.Items) == 0,
		in.Total <= 0,
		in.ShippingAddress == (models.ShippingAddress{}):
		return &ValidationError{Msg: "All fields are required"}
	}
	for _, line := range in.Items {
		if line.ProductID == 0 || line.Quantity < 1 {
			return &ValidationError{Msg: "All fields are required"}
		}
	}
	return nil
}

func distinctProductIDs(lines []Line) []uint {
	seen := make(map[uint]bool, len(lines))
	ids := make([]uint, 0, len(lines))
	for _, l := range lines {
		if !seen[l.ProductID] {
			seen[l.ProductID] = true
			ids = append(ids, l.ProductID)
		}
	}
	return ids
}

// classify wraps errors that escaped the transaction (e.g. a commit
// failure) so callers always see one of the package's error kinds.
func classify(err error) error {
	var internal *InternalError
	if IsValidation(err) || IsNotFound(err) || IsInsufficientStock(err) || errors.As(err, &internal) {
		return err
	}
	return &InternalError{Err: err}
}
