package customer

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("customer not found")
	ErrEmailExists = errors.New("email already exists")
)

// Repository defines persistence operations for customers.
type Repository interface {
	GetByID(ctx context.Context, id string) (Customer, error)
	GetByEmail(ctx context.Context, email string) (Customer, error)
	Create(ctx context.Context, c Customer) (Customer, error)
	Update(ctx context.Context, id string, c Customer) (Customer, error)
	// AddOrderID upserts an order id into the customer's order set.
	// Inserting the same id twice is a no-op.
	AddOrderID(ctx context.Context, customerID, orderID string) error
}
