package order

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ServiceInterface is implemented by Service and by the checkout package's
// test doubles.
type ServiceInterface interface {
	Create(o Order) (Order, error)
	GetForUser(id, userID int) (Order, error)
	ListByUser(userID int) ([]Order, error)
	Cancel(id, userID int) (Order, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create persists a new order in PENDING with a generated order number.
// Items and pricing arrive frozen from checkout and are stored as-is.
func (s *Service) Create(o Order) (Order, error) {
	if len(o.Items) == 0 {
		return Order{}, ErrEmptyOrder
	}

	now := time.Now().UTC().Format(time.RFC3339)
	o.OrderNumber = newOrderNumber()
	o.Status = StatusPending
	o.PaymentStatus = PaymentUnpaid
	o.TrackingNumber = ""
	o.CreatedAt = now
	o.UpdatedAt = now

	return s.repo.Create(o)
}

func (s *Service) GetForUser(id, userID int) (Order, error) {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if o.UserID != userID {
		return Order{}, ErrNotFound
	}
	return o, nil
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	return s.repo.ListByUser(userID)
}

// Cancel is the customer-initiated cancellation. It is only permitted while
// the order is still PENDING; anything later needs staff action.
func (s *Service) Cancel(id, userID int) (Order, error) {
	o, err := s.GetForUser(id, userID)
	if err != nil {
		return Order{}, err
	}
	if o.Status != StatusPending {
		return Order{}, ErrNotCancellable
	}
	o.Status = StatusCancelled
	o.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(o)
}

// AdminList returns all orders, optionally filtered by status.
func (s *Service) AdminList(status Status) ([]Order, error) {
	if status != "" && !status.Valid() {
		return nil, ErrInvalidTransition
	}
	return s.repo.ListAll(status)
}

func (s *Service) AdminGet(id int) (Order, error) {
	return s.repo.GetByID(id)
}

// AdminUpdateStatus moves an order along the lifecycle. Transitions outside
// the state machine are rejected.
func (s *Service) AdminUpdateStatus(id int, next Status) (Order, error) {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	if !next.Valid() || !o.Status.CanTransitionTo(next) {
		return Order{}, ErrInvalidTransition
	}
	o.Status = next
	// delivery of a cash-on-delivery order settles the payment
	if next == StatusDelivered && o.PaymentMethod == PaymentCOD {
		o.PaymentStatus = PaymentPaid
	}
	o.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(o)
}

func (s *Service) AdminSetTracking(id int, trackingNumber string) (Order, error) {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return Order{}, err
	}
	o.TrackingNumber = trackingNumber
	o.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Update(o)
}

func newOrderNumber() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:8])
}
