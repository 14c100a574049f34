package category

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	ErrNotFound   = errors.New("category not found")
	ErrSlugExists = errors.New("category slug already exists")
)

// Repository provides access to category storage.
type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetBySlug(ctx context.Context, slug string) (Category, error)
	Create(ctx context.Context, c Category) (Category, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu         sync.RWMutex
	categories []Category
	nextID     int
}

func NewInMemoryRepository(seed []Category) *InMemoryRepository {
	r := &InMemoryRepository{}
	for _, c := range seed {
		r.nextID++
		if c.ID == "" {
			c.ID = fmt.Sprintf("cat-%d", r.nextID)
		}
		r.categories = append(r.categories, c)
	}
	return r
}

func (r *InMemoryRepository) List(ctx context.Context) ([]Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *InMemoryRepository) GetBySlug(ctx context.Context, slug string) (Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (r *InMemoryRepository) Create(ctx context.Context, c Category) (Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.categories {
		if existing.Slug == c.Slug {
			return Category{}, ErrSlugExists
		}
	}
	r.nextID++
	c.ID = fmt.Sprintf("cat-%d", r.nextID)
	r.categories = append(r.categories, c)
	return c, nil
}
