package customer

import (
	"context"
	"strconv"
	"sync"
	"time"
)

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	customers []Customer
	nextID    int
}

func NewInMemoryRepository(seed []Customer) *InMemoryRepository {
	r := &InMemoryRepository{customers: make([]Customer, 0, len(seed)), nextID: 1}
	for _, c := range seed {
		if c.ID == "" {
			c.ID = "cus-" + strconv.Itoa(r.nextID)
			r.nextID++
		}
		r.customers = append(r.customers, c)
	}
	return r
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Email == email {
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.customers {
		if existing.Email == c.Email {
			return Customer{}, ErrEmailExists
		}
	}
	if c.ID == "" {
		c.ID = "cus-" + strconv.Itoa(r.nextID)
		r.nextID++
	}
	r.customers = append(r.customers, c)
	return c, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id string, c Customer) (Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.customers {
		if existing.ID == id {
			c.ID = id
			c.UpdatedAt = time.Now().UTC()
			r.customers[i] = c
			return c, nil
		}
	}
	return Customer{}, ErrNotFound
}

func (r *InMemoryRepository) AddOrderID(ctx context.Context, customerID, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.customers {
		if c.ID == customerID {
			for _, existing := range c.OrderIDs {
				if existing == orderID {
					return nil
				}
			}
			c.OrderIDs = append(c.OrderIDs, orderID)
			r.customers[i] = c
			return nil
		}
	}
	return ErrNotFound
}
