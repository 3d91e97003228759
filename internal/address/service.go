package address

import "time"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(userID int) ([]Address, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}

func (s *Service) GetForUser(id, userID int) (Address, error) {
	if id <= 0 || userID <= 0 {
		return Address{}, ErrNotFound
	}
	return s.repo.GetForUser(id, userID)
}

func (s *Service) Create(a Address) (Address, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	a.CreatedAt = now
	a.UpdatedAt = now
	return s.repo.Create(a)
}

func (s *Service) Update(a Address) (Address, error) {
	a.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(a)
}

func (s *Service) Delete(id, userID int) error {
	return s.repo.Delete(id, userID)
}
