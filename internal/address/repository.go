package address

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var ErrNotFound = errors.New("address not found")

// Repository provides access to saved addresses. Lookups are always scoped to
// a customer so one customer can never read or mutate another's entries.
type Repository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]Address, error)
	Get(ctx context.Context, customerID, addressID string) (Address, error)
	Create(ctx context.Context, a Address) (Address, error)
	Update(ctx context.Context, a Address) (Address, error)
	Delete(ctx context.Context, customerID, addressID string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	addresses map[string]Address
	nextID    int
}

func NewInMemoryRepository(seed []Address) *InMemoryRepository {
	r := &InMemoryRepository{addresses: make(map[string]Address)}
	for _, a := range seed {
		r.nextID++
		if a.ID == "" {
			a.ID = fmt.Sprintf("addr-%d", r.nextID)
		}
		r.addresses[a.ID] = a
	}
	return r
}

func (r *InMemoryRepository) ListByCustomer(ctx context.Context, customerID string) ([]Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Address, 0)
	for _, a := range r.addresses {
		if a.CustomerID == customerID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Get(ctx context.Context, customerID, addressID string) (Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.addresses[addressID]
	if !ok || a.CustomerID != customerID {
		return Address{}, ErrNotFound
	}
	return a, nil
}

func (r *InMemoryRepository) Create(ctx context.Context, a Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	a.ID = fmt.Sprintf("addr-%d", r.nextID)
	r.addresses[a.ID] = a
	return a, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, a Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.addresses[a.ID]
	if !ok || existing.CustomerID != a.CustomerID {
		return Address{}, ErrNotFound
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	r.addresses[a.ID] = a
	return a, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, customerID, addressID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.addresses[addressID]
	if !ok || a.CustomerID != customerID {
		return ErrNotFound
	}
	delete(r.addresses, addressID)
	return nil
}
