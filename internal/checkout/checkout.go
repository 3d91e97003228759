package checkout

import (
	"errors"

	"github.com/shoplite/shop-backend/internal/order"
)

// Status tracks a checkout attempt through its lifecycle.
type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusValidating Status = "VALIDATING"
	StatusSubmitting Status = "SUBMITTING"
	StatusSucceeded  Status = "SUCCEEDED"
	StatusFailed     Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Validation failures; none of these reach the order service.
var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrIncompleteAddress = errors.New("shipping address needs fullName, phone and an address line")
	ErrInvalidPayment    = errors.New("payment method must be card or cod")
)

// Request carries the customer's checkout selections. The shipping address
// is either a stored address id or an inline address.
type Request struct {
	AddressID       int            `json:"addressId,omitempty"`
	ShippingAddress *order.Address `json:"shippingAddress,omitempty"`
	PaymentMethod   string         `json:"paymentMethod"`
}

// Result is the terminal outcome of a Submit call. On failure Order is the
// zero value and the cart is left untouched so the user can retry.
type Result struct {
	Status Status      `json:"status"`
	Order  order.Order `json:"order,omitempty"`
}

func addressComplete(a order.Address) bool {
	return a.FullName != "" && a.Phone != "" && a.Line1 != ""
}
