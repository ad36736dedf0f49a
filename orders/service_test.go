package orders

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

// fakeStore is an in-memory Store. Mutating calls are counted so tests can
// assert that failed placements performed no writes. Transact snapshots
// product stock up front and restores it when the callback errors,
// mirroring a real transaction rollback.
type fakeStore struct {
	txMu     sync.Mutex // serializes whole transactions, like row locks would
	mu       sync.Mutex
	products map[uint]models.Product
	orders   []models.Order
	nextID   uint

	decrements int
	inserts    int

	failInsert bool
}

func newFakeStore(products ...models.Product) *fakeStore {
	s := &fakeStore{products: make(map[uint]models.Product), nextID: 1}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

func (s *fakeStore) Repos() Repos {
	return Repos{Products: (*fakeProductRepo)(s), Orders: (*fakeOrderRepo)(s)}
}

func (s *fakeStore) Transact(ctx context.Context, fn func(Repos) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	before := make(map[uint]models.Product, len(s.products))
	for id, p := range s.products {
		before[id] = p
	}
	ordersBefore := len(s.orders)
	s.mu.Unlock()

	if err := fn(s.Repos()); err != nil {
		s.mu.Lock()
		s.products = before
		s.orders = s.orders[:ordersBefore]
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *fakeStore) stock(id uint) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Quantity
}

type fakeProductRepo fakeStore

func (r *fakeProductRepo) FindByIDs(_ context.Context, ids []uint) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) DecrementQuantity(_ context.Context, id uint, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok || p.Quantity < amount {
		return &InsufficientStockError{ProductID: id, Requested: amount}
	}
	p.Quantity -= amount
	r.products[id] = p
	r.decrements++
	return nil
}

type fakeOrderRepo fakeStore

func (r *fakeOrderRepo) Insert(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failInsert {
		return errors.New("connection reset")
	}
	order.ID = r.nextID
	r.nextID++
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	r.orders = append(r.orders, *order)
	r.inserts++
	return nil
}

func (r *fakeOrderRepo) FindByID(_ context.Context, id uint) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, &NotFoundError{Msg: "Order not found"}
}

func (r *fakeOrderRepo) FindByTrackingID(_ context.Context, trackingID string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].TrackingID == trackingID {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, &NotFoundError{Msg: "Order not found"}
}

func (r *fakeOrderRepo) FindByUser(_ context.Context, userID string) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) FindAll(_ context.Context, status models.OrderStatus) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.orders {
		if r.orders[i].ID == id {
			r.orders[i].Status = status
			r.orders[i].UpdatedAt = time.Now()
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, &NotFoundError{Msg: "Order not found"}
}

func validInput() PlaceOrderInput {
	return PlaceOrderInput{
		UserID: "u1",
		User:   UserSnapshot{ID: "u1", Name: "John Doe", Email: "john@example.com"},
		Items:  []Line{{ProductID: 1, Quantity: 2}},
		Total:  1000,
		ShippingAddress: models.ShippingAddress{
			FullName: "John Doe", Email: "john@example.com", Phone: "555-0101",
			Address: "12 Farm Road", City: "Lagos", State: "LA", ZipCode: "100001",
		},
	}
}

func apples() models.Product {
	return models.Product{ID: 1, Name: "Apples", Image: "apples.jpg", Price: 500, Quantity: 10}
}

func TestPlaceOrderHappyPath(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	order, err := svc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)

	assert.Equal(t, 8, store.stock(1), "stock must drop by the ordered quantity")
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Regexp(t, regexp.MustCompile(`^TRK[A-Z0-9]{9}$`), order.TrackingID)
	assert.Equal(t, 1000.0, order.Total)

	require.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, uint(1), item.ProductID)
	assert.Equal(t, "Apples", item.ProductName)
	assert.Equal(t, "apples.jpg", item.ProductImage)
	assert.Equal(t, 500.0, item.ProductPrice)
	assert.Equal(t, 2, item.Quantity)
}

func TestPlaceOrderSnapshotsCatalogNotCart(t *testing.T) {
	// The catalog price moved after the shopper built the cart; the order
	// must reflect the catalog as read at placement time.
	p := apples()
	p.Price = 650
	store := newFakeStore(p)
	svc := NewService(store)

	in := validInput()
	in.Total = 1300
	order, err := svc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 650.0, order.Items[0].ProductPrice)
	assert.Equal(t, 1300.0, order.Total)
}

func TestPlaceOrderValidation(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	cases := map[string]func(*PlaceOrderInput){
		"missing user id":    func(in *PlaceOrderInput) { in.UserID = "" },
		"missing user":       func(in *PlaceOrderInput) { in.User = UserSnapshot{} },
		"empty items":        func(in *PlaceOrderInput) { in.Items = nil },
		"missing total":      func(in *PlaceOrderInput) { in.Total = 0 },
		"missing address":    func(in *PlaceOrderInput) { in.ShippingAddress = models.ShippingAddress{} },
		"zero line quantity": func(in *PlaceOrderInput) { in.Items[0].Quantity = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := validInput()
			mutate(&in)

			_, err := svc.PlaceOrder(context.Background(), in)
			require.Error(t, err)
			assert.True(t, IsValidation(err), "want ValidationError, got %T", err)
			assert.EqualError(t, err, "All fields are required")
			assert.Zero(t, store.decrements, "validation failure must not touch stock")
			assert.Zero(t, store.inserts, "validation failure must not persist orders")
		})
	}
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	in := validInput()
	in.Items = append(in.Items, Line{ProductID: 42, Quantity: 1})
	in.Total = 1500

	_, err := svc.PlaceOrder(context.Background(), in)
	require.Error(t, err)
	assert.True(t, IsNotFound(err), "want NotFoundError, got %T", err)
	assert.EqualError(t, err, "Some products not found")
	assert.Equal(t, 10, store.stock(1), "no stock may move when any product is missing")
	assert.Zero(t, store.inserts)
}

func TestPlaceOrderInsufficientStock(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	in := validInput()
	in.Items = []Line{{ProductID: 1, Quantity: 11}}
	in.Total = 5500

	_, err := svc.PlaceOrder(context.Background(), in)
	require.Error(t, err)
	assert.True(t, IsInsufficientStock(err), "want InsufficientStockError, got %T", err)
	assert.Equal(t, 10, store.stock(1))
	assert.Zero(t, store.inserts)
}

func TestPlaceOrderPartialStockFailureRollsBack(t *testing.T) {
	store := newFakeStore(apples(), models.Product{ID: 2, Name: "Mangoes", Price: 600, Quantity: 1})
	svc := NewService(store)

	in := validInput()
	in.Items = []Line{{ProductID: 1, Quantity: 2}, {ProductID: 2, Quantity: 5}}
	in.Total = 4000

	_, err := svc.PlaceOrder(context.Background(), in)
	require.Error(t, err)
	assert.True(t, IsInsufficientStock(err))
	assert.Equal(t, 10, store.stock(1), "the first line's decrement must roll back")
	assert.Equal(t, 1, store.stock(2))
}

func TestPlaceOrderRejectsTamperedTotal(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	in := validInput()
	in.Total = 1 // two apples cost 1000

	_, err := svc.PlaceOrder(context.Background(), in)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
	assert.EqualError(t, err, "Order total mismatch")
	assert.Equal(t, 10, store.stock(1))
	assert.Zero(t, store.inserts)
}

func TestPlaceOrderInsertFailureRestoresStock(t *testing.T) {
	store := newFakeStore(apples())
	store.failInsert = true
	svc := NewService(store)

	_, err := svc.PlaceOrder(context.Background(), validInput())
	require.Error(t, err)
	var internal *InternalError
	assert.ErrorAs(t, err, &internal)
	assert.Equal(t, 10, store.stock(1), "insert failure must roll back the decrement")
}

// Two concurrent checkouts of 6 units against stock 10: at most one may
// succeed and stock must never go negative.
func TestPlaceOrderConcurrentStockSafety(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	in := validInput()
	in.Items = []Line{{ProductID: 1, Quantity: 6}}
	in.Total = 3000

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.PlaceOrder(context.Background(), in)
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.True(t, IsInsufficientStock(err), "loser must see InsufficientStockError, got %v", err)
		}
	}
	assert.LessOrEqual(t, successes, 1)
	assert.GreaterOrEqual(t, store.stock(1), 0, "stock must never go negative")
}

func TestSetStatus(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	order, err := svc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)

	updated, err := svc.SetStatus(context.Background(), order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, updated.Status)
	assert.False(t, updated.UpdatedAt.Before(order.UpdatedAt))

	// Same target status again is harmless.
	again, err := svc.SetStatus(context.Background(), order.ID, models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, again.Status)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	_, err := svc.SetStatus(context.Background(), 1, "shipped")
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestGetOrderByIDAndTrackingID(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	order, err := svc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)

	byID, err := svc.GetOrder(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, order.TrackingID, byID.TrackingID)

	byTracking, err := svc.GetOrder(context.Background(), order.TrackingID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, byTracking.ID)

	_, err = svc.GetOrder(context.Background(), "TRKNOPE00000")
	assert.True(t, IsNotFound(err))
}

func TestListOrdersFilters(t *testing.T) {
	store := newFakeStore(apples())
	svc := NewService(store)

	first, err := svc.PlaceOrder(context.Background(), validInput())
	require.NoError(t, err)

	in := validInput()
	in.UserID = "u2"
	in.User.ID = "u2"
	_, err = svc.PlaceOrder(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), first.ID, models.OrderStatusDelivered)
	require.NoError(t, err)

	mine, err := svc.ListOrders(context.Background(), "u1", "")
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	delivered, err := svc.ListOrders(context.Background(), "", models.OrderStatusDelivered)
	require.NoError(t, err)
	assert.Len(t, delivered, 1)

	minePending, err := svc.ListOrders(context.Background(), "u1", models.OrderStatusPending)
	require.NoError(t, err)
	assert.Empty(t, minePending)
}
