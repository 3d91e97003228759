package wishlist

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("user not found")

// Repository stores wishlist membership as product id sets per user.
// Adding an id already present is a no-op, not an error.
type Repository interface {
	Add(userID, productID int) ([]int, error)
	Remove(userID, productID int) ([]int, error)
	List(userID int) ([]int, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	lists map[int][]int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{lists: make(map[int][]int)}
}

func (r *InMemoryRepository) Add(userID, productID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range r.lists[userID] {
		if id == productID {
			return append([]int(nil), r.lists[userID]...), nil
		}
	}
	r.lists[userID] = append(r.lists[userID], productID)
	return append([]int(nil), r.lists[userID]...), nil
}

func (r *InMemoryRepository) Remove(userID, productID int) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := r.lists[userID]
	for i, id := range ids {
		if id == productID {
			r.lists[userID] = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	return append([]int(nil), r.lists[userID]...), nil
}

func (r *InMemoryRepository) List(userID int) ([]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]int(nil), r.lists[userID]...), nil
}
