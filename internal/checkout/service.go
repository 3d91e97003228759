package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shoplite/shop-backend/internal/address"
	"github.com/shoplite/shop-backend/internal/cart"
	"github.com/shoplite/shop-backend/internal/order"
	"github.com/shoplite/shop-backend/internal/pricing"
)

// CartService is the slice of the cart service checkout needs.
type CartService interface {
	Get(userID int) (cart.Cart, error)
	Clear(userID int) error
}

// AddressService resolves stored addresses for checkout requests that send
// an address id instead of an inline address.
type AddressService interface {
	GetForUser(addressID, userID int) (address.Address, error)
}

// Service is the checkout orchestrator: it validates the cart and the
// customer's selections, freezes the pricing breakdown and line items, and
// places the order. The cart is cleared only after the order exists.
type Service struct {
	carts     CartService
	orders    order.ServiceInterface
	addresses AddressService
}

func NewService(carts CartService, orders order.ServiceInterface, addresses AddressService) *Service {
	return &Service{carts: carts, orders: orders, addresses: addresses}
}

// Submit runs one checkout attempt: Validating, then Submitting, ending in
// Succeeded or Failed. Validation failures never reach the order service.
//
// The cart snapshot (items and shipping method) is read here, at submit
// time, so a shipping method changed mid-flow is honored rather than a value
// cached earlier in the session.
func (s *Service) Submit(userID int, req Request) (Result, error) {
	c, err := s.carts.Get(userID)
	if err != nil {
		return Result{Status: StatusFailed}, err
	}

	if len(c.Items) == 0 {
		return Result{Status: StatusFailed}, ErrEmptyCart
	}

	addr, err := s.resolveAddress(userID, req)
	if err != nil {
		return Result{Status: StatusFailed}, err
	}
	if !addressComplete(addr) {
		return Result{Status: StatusFailed}, ErrIncompleteAddress
	}

	payment := order.PaymentMethod(req.PaymentMethod)
	if !payment.Valid() {
		return Result{Status: StatusFailed}, ErrInvalidPayment
	}

	// freeze the breakdown and a snapshot copy of the items
	breakdown := pricing.Compute(c.PricingLines(), c.ShippingMethod, decimal.Zero)
	items := make([]order.Item, 0, len(c.Items))
	for _, li := range c.Items {
		items = append(items, order.Item{
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
			Size:      li.Size,
			Color:     li.Color,
		})
	}

	created, err := s.orders.Create(order.Order{
		UserID:          userID,
		Items:           items,
		Pricing:         breakdown,
		PaymentMethod:   payment,
		ShippingMethod:  c.ShippingMethod,
		ShippingAddress: addr,
	})
	if err != nil {
		// the cart is untouched; the user can retry
		return Result{Status: StatusFailed}, err
	}

	// the order exists; a failed cart clear must not fail the checkout
	if err := s.carts.Clear(userID); err != nil {
		fmt.Printf("warning: could not clear cart for user %d after order %s: %v\n", userID, created.OrderNumber, err)
	}

	return Result{Status: StatusSucceeded, Order: created}, nil
}

func (s *Service) resolveAddress(userID int, req Request) (order.Address, error) {
	if req.AddressID > 0 {
		stored, err := s.addresses.GetForUser(req.AddressID, userID)
		if err != nil {
			return order.Address{}, err
		}
		return order.Address{
			FullName:   stored.FullName,
			Phone:      stored.Phone,
			Line1:      stored.Line1,
			City:       stored.City,
			PostalCode: stored.PostalCode,
		}, nil
	}
	if req.ShippingAddress == nil {
		return order.Address{}, ErrIncompleteAddress
	}
	return *req.ShippingAddress, nil
}
