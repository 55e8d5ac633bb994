package order

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}

// GetForUser loads an order by its number and enforces ownership.
func (s *Service) GetForUser(userID int, orderNumber string) (Order, error) {
	ord, err := s.repo.GetByOrderNumber(orderNumber)
	if err != nil {
		return Order{}, err
	}
	if ord.UserID != userID {
		return Order{}, ErrNotFound
	}
	return ord, nil
}
