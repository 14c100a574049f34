package address

import (
	"context"
	"errors"
	"time"
)

var ErrMissingFields = errors.New("recipient, line1 and city are required")

// Service orchestrates address book operations.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, customerID string) ([]Address, error) {
	return s.repo.ListByCustomer(ctx, customerID)
}

func (s *Service) Get(ctx context.Context, customerID, addressID string) (Address, error) {
	return s.repo.Get(ctx, customerID, addressID)
}

func (s *Service) Create(ctx context.Context, a Address) (Address, error) {
	if a.Recipient == "" || a.Line1 == "" || a.City == "" {
		return Address{}, ErrMissingFields
	}
	if a.Country == "" {
		a.Country = "Bangladesh"
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, a Address) (Address, error) {
	if a.Recipient == "" || a.Line1 == "" || a.City == "" {
		return Address{}, ErrMissingFields
	}
	return s.repo.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, customerID, addressID string) error {
	return s.repo.Delete(ctx, customerID, addressID)
}
