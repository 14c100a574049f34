package favorite

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrAlreadyFavorite  = errors.New("product already in favorites")
	ErrNotFavorite      = errors.New("product not in favorites")
)

// Repository mutates the favorite product ids stored on the customer record.
type Repository interface {
	Add(ctx context.Context, customerID, productID string) ([]string, error)
	Remove(ctx context.Context, customerID, productID string) ([]string, error)
	List(ctx context.Context, customerID string) ([]string, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu        sync.RWMutex
	favorites map[string][]string
}

func NewInMemoryRepository(seed map[string][]string) *InMemoryRepository {
	if seed == nil {
		seed = make(map[string][]string)
	}
	return &InMemoryRepository{favorites: seed}
}

func (r *InMemoryRepository) Add(ctx context.Context, customerID, productID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids, ok := r.favorites[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	for _, id := range ids {
		if id == productID {
			return nil, ErrAlreadyFavorite
		}
	}
	ids = append(ids, productID)
	r.favorites[customerID] = ids
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, customerID, productID string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids, ok := r.favorites[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	kept := make([]string, 0, len(ids))
	found := false
	for _, id := range ids {
		if id == productID {
			found = true
			continue
		}
		kept = append(kept, id)
	}
	if !found {
		return nil, ErrNotFavorite
	}
	r.favorites[customerID] = kept
	out := make([]string, len(kept))
	copy(out, kept)
	return out, nil
}

func (r *InMemoryRepository) List(ctx context.Context, customerID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids, ok := r.favorites[customerID]
	if !ok {
		return nil, ErrCustomerNotFound
	}
	out := make([]string, len(ids))
	copy(out, ids)
	return out, nil
}
