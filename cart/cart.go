// Package cart implements the shopper's in-session cart as a pure state
// machine. Every operation takes a State and returns a new State whose
// Total is recomputed from scratch, so the total can never drift from the
// items. Nothing here touches the database; stock is only checked later,
// at order placement.
package cart

import "github.com/ojohpeters/Farmers-marketplace/models"

// Item is one line in a cart. Product is a snapshot taken when the item
// was added and is not refreshed from the catalog afterwards.
type Item struct {
	ProductID uint           `json:"product_id"`
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
}

// State holds the items in insertion order together with the derived total.
type State struct {
	Items []Item  `json:"items"`
	Total float64 `json:"total"`
}

// NewState returns the empty cart.
func NewState() State {
	return State{Items: []Item{}, Total: 0}
}

// Add puts quantity units of product into the cart. If the product is
// already present the quantities accumulate; adding twice is not the same
// as adding once.
func Add(s State, product models.Product, quantity int) State {
	items := make([]Item, len(s.Items), len(s.Items)+1)
	copy(items, s.Items)

	found := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		items = append(items, Item{
			ProductID: product.ID,
			Product:   product,
			Quantity:  quantity,
		})
	}
	return State{Items: items, Total: total(items)}
}

// Remove drops the item for productID. The state is returned unchanged if
// the product is not in the cart.
func Remove(s State, productID uint) State {
	idx := -1
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	items := make([]Item, 0, len(s.Items)-1)
	items = append(items, s.Items[:idx]...)
	items = append(items, s.Items[idx+1:]...)
	return State{Items: items, Total: total(items)}
}

// UpdateQuantity sets the item's quantity to the given absolute value.
// A quantity of zero or less removes the item. Unknown products are a
// no-op.
func UpdateQuantity(s State, productID uint, quantity int) State {
	if quantity <= 0 {
		return Remove(s, productID)
	}

	idx := -1
	for i := range s.Items {
		if s.Items[i].ProductID == productID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return s
	}

	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	items[idx].Quantity = quantity
	return State{Items: items, Total: total(items)}
}

// Clear resets to the empty cart. Called after a confirmed order.
func Clear(State) State {
	return NewState()
}

func total(items []Item) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Product.Price * float64(it.Quantity)
	}
	return sum
}
