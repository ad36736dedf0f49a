package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojohpeters/Farmers-marketplace/models"
)

func product(id uint, price float64) models.Product {
	return models.Product{ID: id, Name: "Apples", Price: price, Quantity: 100}
}

// sumItems recomputes the total independently of the reducer.
func sumItems(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Product.Price * float64(it.Quantity)
	}
	return sum
}

func TestAddNewItem(t *testing.T) {
	s := Add(NewState(), product(1, 500), 2)

	require.Len(t, s.Items, 1)
	assert.Equal(t, uint(1), s.Items[0].ProductID)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assert.Equal(t, 1000.0, s.Total)
}

func TestAddAccumulatesQuantity(t *testing.T) {
	s := Add(NewState(), product(1, 500), 2)
	s = Add(s, product(1, 500), 2)

	require.Len(t, s.Items, 1, "same product must collapse into one line")
	assert.Equal(t, 4, s.Items[0].Quantity)
	assert.Equal(t, 2000.0, s.Total)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	s := Add(NewState(), product(1, 100), 1)
	s = Add(s, product(2, 200), 1)
	s = Add(s, product(1, 100), 1)

	require.Len(t, s.Items, 2)
	assert.Equal(t, uint(1), s.Items[0].ProductID)
	assert.Equal(t, uint(2), s.Items[1].ProductID)
}

func TestAddSnapshotsProduct(t *testing.T) {
	p := product(1, 500)
	s := Add(NewState(), p, 1)

	// Later price changes to the caller's copy must not reach the cart.
	p.Price = 900
	assert.Equal(t, 500.0, s.Items[0].Product.Price)
	assert.Equal(t, 500.0, s.Total)
}

func TestRemoveItem(t *testing.T) {
	s := Add(NewState(), product(1, 500), 2)
	s = Add(s, product(2, 300), 1)
	s = Remove(s, 1)

	require.Len(t, s.Items, 1)
	assert.Equal(t, uint(2), s.Items[0].ProductID)
	assert.Equal(t, 300.0, s.Total)
}

func TestRemoveUnknownProductIsNoop(t *testing.T) {
	s := Add(NewState(), product(1, 500), 2)
	got := Remove(s, 99)

	assert.Equal(t, s, got)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	s := Add(NewState(), product(1, 500), 2)
	s = UpdateQuantity(s, 1, 5)

	assert.Equal(t, 5, s.Items[0].Quantity)
	assert.Equal(t, 2500.0, s.Total)
}

func TestUpdateQuantityZeroOrNegativeRemoves(t *testing.T) {
	for _, qty := range []int{0, -3} {
		s := Add(NewState(), product(1, 500), 2)
		s = Add(s, product(2, 300), 1)

		got := UpdateQuantity(s, 1, qty)
		want := Remove(s, 1)
		assert.Equal(t, want, got)
	}
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	s := Add(NewState(), product(1, 500), 2)
	got := UpdateQuantity(s, 99, 3)

	assert.Equal(t, s, got)
}

func TestClear(t *testing.T) {
	s := Add(NewState(), product(1, 500), 2)
	s = Add(s, product(2, 300), 4)
	s = Clear(s)

	assert.Empty(t, s.Items)
	assert.Equal(t, 0.0, s.Total)
}

func TestReducersDoNotMutateInput(t *testing.T) {
	base := Add(NewState(), product(1, 500), 2)
	snapshot := base.Items[0]

	_ = Add(base, product(1, 500), 3)
	_ = UpdateQuantity(base, 1, 9)
	_ = Remove(base, 1)

	assert.Equal(t, snapshot, base.Items[0])
	assert.Equal(t, 1000.0, base.Total)
}

// Total must equal the sum over items after every action in any sequence.
func TestTotalInvariantAcrossActionSequence(t *testing.T) {
	s := NewState()
	steps := []func(State) State{
		func(s State) State { return Add(s, product(1, 500), 2) },
		func(s State) State { return Add(s, product(2, 250), 1) },
		func(s State) State { return Add(s, product(1, 500), 1) },
		func(s State) State { return UpdateQuantity(s, 2, 4) },
		func(s State) State { return Remove(s, 1) },
		func(s State) State { return UpdateQuantity(s, 2, 0) },
		func(s State) State { return Add(s, product(3, 120), 7) },
		func(s State) State { return Clear(s) },
	}
	for i, step := range steps {
		s = step(s)
		assert.Equalf(t, sumItems(s.Items), s.Total, "total drifted after step %d", i)
	}
}
