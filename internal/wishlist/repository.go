package wishlist

import (
	"errors"
	"sync"
)

var ErrNotInWishlist = errors.New("product not in wishlist")

type Repository interface {
	// Add stores the pair; adding a product twice is a no-op.
	Add(userID, productID int) error
	Remove(userID, productID int) error
	List(userID int) ([]Item, error)
}

// InMemoryRepository is used by tests and local scenarios.
type InMemoryRepository struct {
	mu      sync.RWMutex
	entries map[int]map[int]struct{} // userID -> productID set
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{entries: make(map[int]map[int]struct{})}
}

func (r *InMemoryRepository) Add(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries[userID] == nil {
		r.entries[userID] = make(map[int]struct{})
	}
	r.entries[userID][productID] = struct{}{}
	return nil
}

func (r *InMemoryRepository) Remove(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[userID][productID]; !ok {
		return ErrNotInWishlist
	}
	delete(r.entries[userID], productID)
	return nil
}

func (r *InMemoryRepository) List(userID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0, len(r.entries[userID]))
	for pid := range r.entries[userID] {
		out = append(out, Item{ProductID: pid})
	}
	return out, nil
}
