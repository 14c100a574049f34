package cart

import (
	"testing"

	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
)

func TestAddItemMergesByProductID(t *testing.T) {
	var c Cart
	unit := currency.Amount{CNY: 8, USD: 1.2, BDT: 100}

	c.AddItem(Item{ProductID: "p1", Quantity: 2, UnitPrice: unit, Color: "red"})
	c.AddItem(Item{ProductID: "p1", Quantity: 3, UnitPrice: unit, Color: "blue"})

	if len(c.Items) != 1 {
		t.Fatalf("expected a single merged line, got %d", len(c.Items))
	}
	line := c.Items[0]
	if line.Quantity != 5 {
		t.Errorf("expected quantity 5, got %d", line.Quantity)
	}
	if line.TotalPrice.BDT != 500 {
		t.Errorf("expected totalPrice.bdt 500, got %v", line.TotalPrice.BDT)
	}
	// merge key is product identity only; color variants collapse
	if line.Color != "red" {
		t.Errorf("expected first line's color to win, got %q", line.Color)
	}
}

func TestAddItemDistinctProducts(t *testing.T) {
	var c Cart
	c.AddItem(Item{ProductID: "p1", Quantity: 1, UnitPrice: currency.Amount{BDT: 500}})
	c.AddItem(Item{ProductID: "p2", Quantity: 1, UnitPrice: currency.Amount{BDT: 200}})

	if len(c.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.Items))
	}
}

func TestSubTotalSumsPerCurrency(t *testing.T) {
	var c Cart
	c.AddItem(Item{ProductID: "p1", Quantity: 1, UnitPrice: currency.Amount{CNY: 40, USD: 6, BDT: 500}})
	c.AddItem(Item{ProductID: "p2", Quantity: 1, UnitPrice: currency.Amount{CNY: 16, USD: 2.4, BDT: 200}})

	got := c.SubTotal()
	want := currency.Amount{CNY: 56, USD: 8.4, BDT: 700}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestSubTotalRecomputesMissingLineTotal(t *testing.T) {
	c := Cart{Items: []Item{{
		ProductID: "p1",
		Quantity:  3,
		UnitPrice: currency.Amount{BDT: 100},
		// TotalPrice deliberately left zero
	}}}

	if got := c.SubTotal().BDT; got != 300 {
		t.Fatalf("expected recomputed subtotal 300, got %v", got)
	}
}

func TestUpdateQuantityRecomputesTotal(t *testing.T) {
	var c Cart
	c.AddItem(Item{ProductID: "p1", Quantity: 2, UnitPrice: currency.Amount{BDT: 100}})

	if !c.UpdateQuantity("p1", 7) {
		t.Fatal("expected line to be found")
	}
	if c.Items[0].TotalPrice.BDT != 700 {
		t.Errorf("expected totalPrice.bdt 700, got %v", c.Items[0].TotalPrice.BDT)
	}
	if c.UpdateQuantity("missing", 1) {
		t.Error("expected false for unknown product")
	}
}

func TestRemoveItem(t *testing.T) {
	var c Cart
	c.AddItem(Item{ProductID: "p1", Quantity: 1, UnitPrice: currency.Amount{BDT: 100}})
	c.AddItem(Item{ProductID: "p2", Quantity: 1, UnitPrice: currency.Amount{BDT: 200}})

	c.RemoveItem("p1")
	if len(c.Items) != 1 || c.Items[0].ProductID != "p2" {
		t.Fatalf("expected only p2 to remain, got %+v", c.Items)
	}
}

func TestClearCart(t *testing.T) {
	var c Cart
	c.AddItem(Item{ProductID: "p1", Quantity: 4, UnitPrice: currency.Amount{CNY: 1, USD: 1, BDT: 1}})

	c.Clear()
	if got := c.SubTotal(); got != (currency.Amount{}) {
		t.Fatalf("expected zero subtotal after clear, got %+v", got)
	}
	if c.ItemCount() != 0 {
		t.Fatalf("expected empty cart after clear")
	}
}

func TestItemCountSumsQuantities(t *testing.T) {
	var c Cart
	c.AddItem(Item{ProductID: "p1", Quantity: 2, UnitPrice: currency.Amount{BDT: 1}})
	c.AddItem(Item{ProductID: "p2", Quantity: 3, UnitPrice: currency.Amount{BDT: 1}})

	if got := c.ItemCount(); got != 5 {
		t.Fatalf("expected item count 5, got %d", got)
	}
}
