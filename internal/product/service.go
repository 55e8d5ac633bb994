package product

// ServiceInterface is implemented by *Service and consumed by the cart and
// checkout packages.
type ServiceInterface interface {
	List(categoryID *int) ([]Product, error)
	GetByID(id int) (Product, error)
	ListActiveByIDs(ids []int) ([]Product, error)
	DecrementStock(productID, qty int) error
	ReleaseStock(productID, qty int) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(categoryID *int) ([]Product, error) {
	return s.repo.List(categoryID)
}

func (s *Service) GetByID(id int) (Product, error) {
	return s.repo.GetByID(id)
}

func (s *Service) ListActiveByIDs(ids []int) ([]Product, error) {
	return s.repo.ListActiveByIDs(ids)
}

func (s *Service) DecrementStock(productID, qty int) error {
	if qty <= 0 {
		return nil
	}
	return s.repo.DecrementStock(productID, qty)
}

func (s *Service) ReleaseStock(productID, qty int) error {
	if qty <= 0 {
		return nil
	}
	return s.repo.ReleaseStock(productID, qty)
}

var _ ServiceInterface = (*Service)(nil)
