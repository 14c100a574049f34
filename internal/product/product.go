package product

import (
	"time"

	"github.com/shakilahmed/banglabazaar-backend/internal/currency"
)

// Product is a catalog item. Prices carry all three settlement currencies.
type Product struct {
	ID          string   `json:"productId" bson:"_id,omitempty"`
	Title       string   `json:"title" bson:"title"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	CategoryID  string   `json:"categoryId,omitempty" bson:"categoryId,omitempty"`
	Colors      []string `json:"colors,omitempty" bson:"colors,omitempty"`
	Sizes       []string `json:"sizes,omitempty" bson:"sizes,omitempty"`

	Price currency.Amount `json:"price" bson:"price"`
	// CompareAtPrice is the pre-discount price. Zero legs mean no discount.
	CompareAtPrice currency.Amount `json:"compareAtPrice,omitempty" bson:"compareAtPrice,omitempty"`

	// MinOrderQty is the smallest quantity a customer may order. Zero means 1.
	MinOrderQty int  `json:"minOrderQty,omitempty" bson:"minOrderQty,omitempty"`
	Active      bool `json:"active" bson:"active"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// DiscountPerUnit is the per-unit saving against the compare-at price,
// clamped at zero per leg.
func (p Product) DiscountPerUnit() currency.Amount {
	return p.CompareAtPrice.SubFloor(p.Price)
}

// EffectiveMinOrderQty normalizes the minimum order quantity.
func (p Product) EffectiveMinOrderQty() int {
	if p.MinOrderQty < 1 {
		return 1
	}
	return p.MinOrderQty
}
