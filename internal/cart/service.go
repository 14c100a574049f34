package cart

import (
	"context"
	"errors"

	"github.com/shakilahmed/banglabazaar-backend/internal/product"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("item not in cart")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrBelowMinimum    = errors.New("quantity below minimum order quantity")
)

// Service orchestrates cart operations. Price and title are snapshotted from
// the catalog at add time; the cart layer itself never enforces quantity
// minimums, the service does before mutating.
type Service struct {
	store    Store
	products product.ServiceInterface
}

func NewService(store Store, products product.ServiceInterface) *Service {
	return &Service{store: store, products: products}
}

func (s *Service) Get(ctx context.Context, sessionID string) (Cart, error) {
	return s.store.Load(ctx, sessionID)
}

func (s *Service) AddItem(ctx context.Context, sessionID, productID, color, size string, qty int) (Cart, error) {
	if qty <= 0 {
		return Cart{}, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return Cart{}, ErrProductNotFound
	}
	if !p.Active {
		return Cart{}, ErrProductNotFound
	}
	if qty < p.EffectiveMinOrderQty() {
		return Cart{}, ErrBelowMinimum
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.AddItem(Item{
		ProductID: p.ID,
		Title:     p.Title,
		Color:     color,
		Size:      size,
		Quantity:  qty,
		UnitPrice: p.Price,
	})
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID, productID string, qty int) (Cart, error) {
	if qty <= 0 {
		return Cart{}, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(ctx, productID)
	if err == nil && qty < p.EffectiveMinOrderQty() {
		return Cart{}, ErrBelowMinimum
	}

	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	if !c.UpdateQuantity(productID, qty) {
		return Cart{}, ErrItemNotFound
	}
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Service) RemoveItem(ctx context.Context, sessionID, productID string) (Cart, error) {
	c, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return Cart{}, err
	}
	c.RemoveItem(productID)
	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return Cart{}, err
	}
	return c, nil
}

func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, sessionID)
}
