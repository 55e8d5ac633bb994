package order

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	// Create persists the address snapshot, the order, its items and the
	// shipping record together and returns the stored order.
	Create(ord Order, addr Address, items []Item, ship ShippingRecord) (Order, error)
	GetByOrderNumber(orderNumber string) (Order, error)
	// UpdateStatus sets both lifecycle fields on the order matched by its
	// order number. ErrNotFound when no order matches.
	UpdateStatus(orderNumber string, status Status, paymentStatus PaymentStatus) error
	SetPaymentSession(orderID int, token string) error
	// ListByUser returns the user's orders, newest first, items attached.
	ListByUser(userID int) ([]Order, error)
}

// InMemoryRepository is used by tests and local scenarios.
type InMemoryRepository struct {
	mu            sync.RWMutex
	orders        []Order
	nextID        int
	nextAddressID int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, nextAddressID: 1}
}

func (r *InMemoryRepository) Create(ord Order, addr Address, items []Item, ship ShippingRecord) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addr.ID = r.nextAddressID
	r.nextAddressID++

	ord.ID = r.nextID
	r.nextID++
	ord.AddressID = addr.ID

	ord.Items = make([]Item, len(items))
	for i, it := range items {
		it.ID = i + 1
		it.OrderID = ord.ID
		ord.Items[i] = it
	}

	r.orders = append(r.orders, ord)
	return ord, nil
}

func (r *InMemoryRepository) GetByOrderNumber(orderNumber string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ord := range r.orders {
		if ord.OrderNumber == orderNumber {
			return ord, nil
		}
	}
	return Order{}, ErrNotFound
}

func (r *InMemoryRepository) UpdateStatus(orderNumber string, status Status, paymentStatus PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ord := range r.orders {
		if ord.OrderNumber == orderNumber {
			r.orders[i].Status = status
			r.orders[i].PaymentStatus = paymentStatus
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) SetPaymentSession(orderID int, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, ord := range r.orders {
		if ord.ID == orderID {
			t := token
			r.orders[i].PaymentSessionToken = &t
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for i := len(r.orders) - 1; i >= 0; i-- {
		if r.orders[i].UserID == userID {
			out = append(out, r.orders[i])
		}
	}
	return out, nil
}
