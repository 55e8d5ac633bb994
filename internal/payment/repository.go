package payment

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("payment not found")

type Repository interface {
	GetByTransactionID(transactionID string) (Payment, error)
	Create(p Payment) (Payment, error)
}

// InMemoryRepository is used by tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	payments []Payment
	nextID   int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) GetByTransactionID(transactionID string) (Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.payments {
		if p.TransactionID == transactionID {
			return p, nil
		}
	}
	return Payment{}, ErrNotFound
}

func (r *InMemoryRepository) Create(p Payment) (Payment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.payments {
		if existing.TransactionID == p.TransactionID {
			return existing, nil
		}
	}

	p.ID = r.nextID
	r.nextID++
	r.payments = append(r.payments, p)
	return p, nil
}

// Count is a test helper.
func (r *InMemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.payments)
}
