package product

import (
	"context"
	"errors"
)

// ServiceInterface is what other packages (orders, favorites) need from the
// catalog.
type ServiceInterface interface {
	GetByID(ctx context.Context, id string) (Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]Product, error)
}

// Service provides business logic for the catalog.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByIDs(ctx context.Context, ids []string) ([]Product, error) {
	return s.repo.ListByIDs(ctx, ids)
}

func (s *Service) Create(ctx context.Context, p Product) (Product, error) {
	if p.Title == "" {
		return Product{}, errors.New("title is required")
	}
	if p.Price.Negative() {
		return Product{}, errors.New("price must be non-negative")
	}
	return s.repo.Create(ctx, p)
}

func (s *Service) Update(ctx context.Context, id string, p Product) (Product, error) {
	if p.Price.Negative() {
		return Product{}, errors.New("price must be non-negative")
	}
	return s.repo.Update(ctx, id, p)
}
