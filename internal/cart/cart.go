package cart

import (
	"time"

	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
)

// Item is one cart line. Identity is the referenced product id only, so two
// additions of the same product merge into a single line even when color or
// size differ.
type Item struct {
	ProductID  string          `json:"productId"`
	Title      string          `json:"title"`
	Color      string          `json:"color,omitempty"`
	Size       string          `json:"size,omitempty"`
	Quantity   int             `json:"quantity"`
	UnitPrice  currency.Amount `json:"unitPrice"`
	TotalPrice currency.Amount `json:"totalPrice"`
}

// Cart is the per-session collection of selected items.
type Cart struct {
	Items     []Item    `json:"items"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AddItem merges by product id: an existing line has the incoming quantity
// added and its total recomputed, otherwise the item is appended.
func (c *Cart) AddItem(it Item) {
	for i, existing := range c.Items {
		if existing.ProductID == it.ProductID {
			existing.Quantity += it.Quantity
			existing.TotalPrice = existing.UnitPrice.MulQty(existing.Quantity)
			c.Items[i] = existing
			c.touch()
			return
		}
	}
	it.TotalPrice = it.UnitPrice.MulQty(it.Quantity)
	c.Items = append(c.Items, it)
	c.touch()
}

// RemoveItem drops every line matching the product id.
func (c *Cart) RemoveItem(productID string) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	c.touch()
}

// UpdateQuantity sets the quantity on the matching line and recomputes its
// total. No lower bound is enforced here; minimum-order checks happen at the
// handler before this is called. Returns false when no line matches.
func (c *Cart) UpdateQuantity(productID string, qty int) bool {
	for i, it := range c.Items {
		if it.ProductID == productID {
			it.Quantity = qty
			it.TotalPrice = it.UnitPrice.MulQty(qty)
			c.Items[i] = it
			c.touch()
			return true
		}
	}
	return false
}

// Clear empties the cart. Invoked after successful payment.
func (c *Cart) Clear() {
	c.Items = nil
	c.touch()
}

// SubTotal sums line totals per currency, recomputing a line's total on the
// fly if it was never set.
func (c Cart) SubTotal() currency.Amount {
	var sum currency.Amount
	for _, it := range c.Items {
		total := it.TotalPrice
		if total.IsZero() && !it.UnitPrice.IsZero() {
			total = it.UnitPrice.MulQty(it.Quantity)
		}
		sum = sum.Add(total)
	}
	return sum
}

// ItemCount sums quantities across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now().UTC()
}
