package wishlist

import "github.com/shoplite/shop-backend/internal/product"

// Service keeps wishlist membership and enriches listings with product
// details so the client gets display-ready entries.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

func (s *Service) Add(userID, productID int) ([]int, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrNotFound
	}
	if _, err := s.products.GetByID(productID); err != nil {
		return nil, err
	}
	return s.repo.Add(userID, productID)
}

func (s *Service) Remove(userID, productID int) ([]int, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.Remove(userID, productID)
}

func (s *Service) List(userID int) ([]product.Product, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	ids, err := s.repo.List(userID)
	if err != nil {
		return nil, err
	}
	return s.products.ListByIDs(ids)
}
