package wishlist

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Add(userID, productID int) ([]Item, error) {
	if err := s.repo.Add(userID, productID); err != nil {
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
