package cart

import (
	"context"
	"sync"
)

// Store persists whole carts keyed by session. A session that has never saved
// a cart loads an empty one, not an error.
type Store interface {
	Load(ctx context.Context, sessionID string) (Cart, error)
	Save(ctx context.Context, sessionID string, c Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// InMemoryStore is used for tests and local scenarios.
type InMemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{carts: make(map[string]Cart)}
}

func (s *InMemoryStore) Load(ctx context.Context, sessionID string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[sessionID], nil
}

func (s *InMemoryStore) Save(ctx context.Context, sessionID string, c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[sessionID] = c
	return nil
}

func (s *InMemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
