package customer

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// ServiceInterface lets other packages (orders, favorites) depend on customer
// operations without knowing the concrete service.
type ServiceInterface interface {
	GetByID(ctx context.Context, id string) (Customer, error)
	AddOrderID(ctx context.Context, customerID, orderID string) error
}

// Service provides business logic for customer accounts.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id string) (Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Register(ctx context.Context, c Customer) (Customer, error) {
	if _, err := s.repo.GetByEmail(ctx, c.Email); err == nil {
		return Customer{}, ErrEmailExists
	} else if err != ErrNotFound {
		return Customer{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(c.Password), bcrypt.DefaultCost)
	if err != nil {
		return Customer{}, err
	}
	c.Password = string(hashed)
	return s.repo.Create(ctx, c)
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (Customer, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return Customer{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(c.Password), []byte(password)) != nil {
		return Customer{}, ErrInvalidCredentials
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, c Customer) (Customer, error) {
	return s.repo.Update(ctx, id, c)
}

func (s *Service) AddOrderID(ctx context.Context, customerID, orderID string) error {
	return s.repo.AddOrderID(ctx, customerID, orderID)
}
