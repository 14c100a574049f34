package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// Repository defines persistence operations for the catalog.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id string) (Product, error)
	// ListByIDs returns the products whose id is present in ids. Missing ids
	// are silently omitted; callers compare lengths when they need all of them.
	ListByIDs(ctx context.Context, ids []string) ([]Product, error)
	Create(ctx context.Context, p Product) (Product, error)
	Update(ctx context.Context, id string, p Product) (Product, error)
}
