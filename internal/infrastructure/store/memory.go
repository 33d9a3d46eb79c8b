package store

import (
	"context"
	"sync"

	"github.com/breadlens/backend/internal/domain"
)

// MemoryStore is a thread-safe in-memory product store. It holds exactly one
// scrape cycle's working set: Replace swaps the whole set, reads hand out
// copies so callers can never mutate the stored snapshot.
type MemoryStore struct {
	products []domain.Product
	mutex    sync.RWMutex
}

// NewMemoryStore creates a new empty in-memory product store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Replace swaps the working set for the given products
func (s *MemoryStore) Replace(ctx context.Context, products []domain.Product) error {
	snapshot := make([]domain.Product, len(products))
	copy(snapshot, products)

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.products = snapshot
	return nil
}

// Products returns a copy of the current working set
func (s *MemoryStore) Products(ctx context.Context) ([]domain.Product, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	snapshot := make([]domain.Product, len(s.products))
	copy(snapshot, s.products)
	return snapshot, nil
}

// Count returns the current number of products in the store
func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.products), nil
}

// Clear removes all products from the store
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.products = nil
	return nil
}
