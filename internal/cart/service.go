package cart

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shoplite/shop-backend/internal/pricing"
	"github.com/shoplite/shop-backend/internal/product"
)

// Service owns all cart mutations. Because the repository stores the cart as
// one snapshot per user, rapid repeated mutations (quantity +/- taps) are
// serialized per user: concurrent calls for the same cart apply in arrival
// order and the last write wins. Every operation returns the stored snapshot
// so callers never keep optimistic local state; after a failed write the
// server state is re-read and returned alongside the error.
type Service struct {
	repo     Repository
	products product.ServiceInterface

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products, locks: make(map[int]*sync.Mutex)}
}

func (s *Service) userLock(userID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *Service) Get(userID int) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrNotFound
	}
	return s.repo.Get(userID)
}

// AddItem appends a line item, capturing the product's current price as the
// immutable unit price. Adding a (product, size, color) combination already
// in the cart increments the existing entry instead of creating a second one.
func (s *Service) AddItem(userID, productID int, size, color string, qty int) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrNotFound
	}
	if qty < 1 {
		return Cart{}, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return Cart{}, err
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	c, err := s.repo.Get(userID)
	if err != nil {
		return Cart{}, err
	}

	candidate := LineItem{ProductID: p.ID, Size: size, Color: color}
	if existing := c.findByVariant(candidate.VariantKey()); existing != nil {
		// merge: quantity grows, the captured unit price stays as it was
		existing.Quantity += qty
	} else {
		candidate.ID = uuid.NewString()
		candidate.Quantity = qty
		candidate.UnitPrice = p.Price
		c.Items = append(c.Items, candidate)
	}
	return s.persist(c)
}

// UpdateQuantity sets (not adds) the quantity of an existing line item.
// A quantity of zero or less removes the item.
func (s *Service) UpdateQuantity(userID int, lineItemID string, qty int) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrNotFound
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	c, err := s.repo.Get(userID)
	if err != nil {
		return Cart{}, err
	}

	i := c.findByID(lineItemID)
	if i < 0 {
		return c, ErrItemNotFound
	}
	if qty <= 0 {
		c.removeAt(i)
	} else {
		c.Items[i].Quantity = qty
	}
	return s.persist(c)
}

func (s *Service) RemoveItem(userID int, lineItemID string) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrNotFound
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	c, err := s.repo.Get(userID)
	if err != nil {
		return Cart{}, err
	}

	i := c.findByID(lineItemID)
	if i < 0 {
		return c, ErrItemNotFound
	}
	c.removeAt(i)
	return s.persist(c)
}

func (s *Service) Clear(userID int) error {
	if userID <= 0 {
		return ErrNotFound
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	return s.repo.Clear(userID, now())
}

func (s *Service) SetShippingMethod(userID int, method pricing.ShippingMethod) (Cart, error) {
	if userID <= 0 {
		return Cart{}, ErrNotFound
	}
	if !method.Valid() {
		return Cart{}, ErrInvalidShipping
	}

	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	c, err := s.repo.Get(userID)
	if err != nil {
		return Cart{}, err
	}
	c.ShippingMethod = method
	return s.persist(c)
}

// Totals derives the pricing breakdown for the cart's current items and
// currently selected shipping method.
func (s *Service) Totals(userID int) (pricing.Breakdown, error) {
	c, err := s.Get(userID)
	if err != nil {
		return pricing.Breakdown{}, err
	}
	return pricing.Compute(c.PricingLines(), c.ShippingMethod, decimal.Zero), nil
}

// persist saves the cart and returns the stored snapshot. On a failed write
// the authoritative server state is re-read so the caller never trusts the
// unconfirmed local mutation.
func (s *Service) persist(c Cart) (Cart, error) {
	c.UpdatedAt = now()
	saved, err := s.repo.Save(c)
	if err != nil {
		authoritative, getErr := s.repo.Get(c.UserID)
		if getErr != nil {
			return Cart{}, err
		}
		return authoritative, err
	}
	return saved, nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
