package order

import (
	"github.com/shopspring/decimal"

	"github.com/shoplite/shop-backend/internal/pricing"
)

// Status is the server-authoritative order state. Clients re-fetch rather
// than inferring transitions locally.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped},
	StatusShipped:    {StatusDelivered},
}

// CanTransitionTo reports whether next is a legal transition from s.
// DELIVERED and CANCELLED are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further status change is possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCOD  PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentCOD
}

type PaymentStatus string

const (
	PaymentUnpaid   PaymentStatus = "UNPAID"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Item is a frozen copy of a cart line at checkout time, not a live
// reference to the cart.
type Item struct {
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"price"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
}

// Address is stored structured on the order, not as a reference, so later
// address edits never rewrite order history.
type Address struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Order is immutable in its items and pricing after creation; only status,
// payment status and tracking number change afterwards.
type Order struct {
	ID              int                    `json:"orderId"`
	OrderNumber     string                 `json:"orderNumber"`
	UserID          int                    `json:"userId"`
	Items           []Item                 `json:"items"`
	Pricing         pricing.Breakdown      `json:"pricing"`
	Status          Status                 `json:"status"`
	PaymentStatus   PaymentStatus          `json:"paymentStatus"`
	PaymentMethod   PaymentMethod          `json:"paymentMethod"`
	ShippingMethod  pricing.ShippingMethod `json:"shippingMethod"`
	ShippingAddress Address                `json:"shippingAddress"`
	TrackingNumber  string                 `json:"trackingNumber,omitempty"`
	CreatedAt       string                 `json:"createdAt"`
	UpdatedAt       string                 `json:"updatedAt"`
}
