package cart

import (
	"sync"

	"github.com/shoplite/shop-backend/internal/pricing"
)

// Repository stores per-user cart snapshots. Get on a user without a cart
// returns an empty cart with the default shipping method, never ErrNotFound;
// a cart row comes into being on first save.
type Repository interface {
	Get(userID int) (Cart, error)
	Save(c Cart) (Cart, error)
	Clear(userID int, updatedAt string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[int]Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[int]Cart)}
}

func (r *InMemoryRepository) Get(userID int) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.carts[userID]; ok {
		return cloneCart(c), nil
	}
	return Cart{UserID: userID, Items: []LineItem{}, ShippingMethod: pricing.ShippingStandard}, nil
}

func (r *InMemoryRepository) Save(c Cart) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[c.UserID] = cloneCart(c)
	return cloneCart(c), nil
}

func (r *InMemoryRepository) Clear(userID int, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[userID]
	if !ok {
		return nil
	}
	c.Items = []LineItem{}
	c.UpdatedAt = updatedAt
	r.carts[userID] = c
	return nil
}

func cloneCart(c Cart) Cart {
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	c.Items = items
	return c
}
