package cart

import (
	"errors"
	"sync"
)

var ErrLineNotFound = errors.New("cart line not found")

type Repository interface {
	// Upsert writes the absolute quantity for the (user, product) pair.
	Upsert(userID, productID, qty int) error
	Remove(userID, productID int) error
	// List returns cart lines joined with product details.
	List(userID int) ([]Item, error)
	// Clear deletes all of the user's cart lines (used by checkout).
	Clear(userID int) error
}

// InMemoryRepository is used by tests and local scenarios. It stores lines
// only, so List returns items without product details.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lines map[int]map[int]int // userID -> productID -> qty
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lines: make(map[int]map[int]int)}
}

func (r *InMemoryRepository) Upsert(userID, productID, qty int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.lines[userID] == nil {
		r.lines[userID] = make(map[int]int)
	}
	r.lines[userID][productID] = qty
	return nil
}

func (r *InMemoryRepository) Remove(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lines[userID][productID]; !ok {
		return ErrLineNotFound
	}
	delete(r.lines[userID], productID)
	return nil
}

func (r *InMemoryRepository) List(userID int) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, 0, len(r.lines[userID]))
	for pid, qty := range r.lines[userID] {
		out = append(out, Item{ProductID: pid, Quantity: qty})
	}
	return out, nil
}

func (r *InMemoryRepository) Clear(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lines, userID)
	return nil
}
