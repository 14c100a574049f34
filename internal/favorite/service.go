package favorite

import (
	"context"

	"github.com/shakilahmed/banglabazaar-backend/internal/product"
)

// Service manages a customer's favorite products.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

// Add marks a product as favorite. The product must exist in the catalog.
func (s *Service) Add(ctx context.Context, customerID, productID string) ([]string, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.repo.Add(ctx, customerID, productID)
}

func (s *Service) Remove(ctx context.Context, customerID, productID string) ([]string, error) {
	return s.repo.Remove(ctx, customerID, productID)
}

// List returns the customer's favorite products, enriched from the catalog.
// Ids whose product has since been removed are silently dropped.
func (s *Service) List(ctx context.Context, customerID string) ([]product.Product, error) {
	ids, err := s.repo.List(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []product.Product{}, nil
	}
	return s.products.ListByIDs(ctx, ids)
}
