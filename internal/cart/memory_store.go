package cart

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Persister used in tests and local development
// without Redis.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]State
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]State)}
}

func (s *MemoryStore) Load(ctx context.Context, cartID string) (State, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[cartID], nil
}

func (s *MemoryStore) Save(ctx context.Context, cartID string, state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cartID] = state
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}
