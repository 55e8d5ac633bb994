package cart

import (
	"github.com/prasetyadw/storefront-backend/internal/product"
)

// Service validates quantities against live stock before writing lines.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

// SetQuantity writes the absolute quantity for a line, clamped to
// [1, live stock]. A quantity below one removes the line.
func (s *Service) SetQuantity(userID, productID, qty int) ([]Item, error) {
	if qty < 1 {
		if err := s.repo.Remove(userID, productID); err != nil && err != ErrLineNotFound {
			return nil, err
		}
		return s.repo.List(userID)
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return nil, product.ErrNotFound
	}
	if !p.IsActive {
		return nil, product.ErrNotFound
	}
	if p.Stock < 1 {
		return nil, product.ErrInsufficientStock
	}
	if qty > p.Stock {
		qty = p.Stock
	}

	if err := s.repo.Upsert(userID, productID, qty); err != nil {
		return nil, err
	}
	return s.repo.List(userID)
}

func (s *Service) Remove(userID, productID int) ([]Item, error) {
	if err := s.repo.Remove(userID, productID); err != nil {
		return nil, err
	}
	return s.repo.List(userID)
}

func (s *Service) List(userID int) ([]Item, error) {
	return s.repo.List(userID)
}

func (s *Service) Clear(userID int) error {
	return s.repo.Clear(userID)
}
