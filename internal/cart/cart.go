package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shoplite/shop-backend/internal/pricing"
)

var (
	ErrNotFound        = errors.New("cart not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	ErrInvalidShipping = errors.New("unknown shipping method")
)

// LineItem is one product+variant+quantity entry in a cart. UnitPrice is
// captured from the product when the item is first added and never changes
// afterwards; quantity updates leave it untouched.
type LineItem struct {
	ID        string          `json:"lineItemId"`
	ProductID int             `json:"productId"`
	Quantity  int             `json:"quantity"`
	Size      string          `json:"size,omitempty"`
	Color     string          `json:"color,omitempty"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// VariantKey identifies a product+variant combination. Two line items with
// the same key are the same logical entry and must be merged, not duplicated.
func (li LineItem) VariantKey() string {
	return fmt.Sprintf("%d|%s|%s", li.ProductID, li.Size, li.Color)
}

// Cart is the per-user aggregate. The server-side snapshot is authoritative:
// every mutation persists the whole cart and returns the stored state.
type Cart struct {
	UserID         int                    `json:"userId"`
	Items          []LineItem             `json:"items"`
	ShippingMethod pricing.ShippingMethod `json:"shippingMethod"`
	UpdatedAt      string                 `json:"updatedAt,omitempty"`
}

// PricingLines adapts the cart items for the pricing calculator.
func (c Cart) PricingLines() []pricing.Line {
	lines := make([]pricing.Line, 0, len(c.Items))
	for _, item := range c.Items {
		lines = append(lines, pricing.Line{UnitPrice: item.UnitPrice, Quantity: item.Quantity})
	}
	return lines
}

func (c *Cart) findByVariant(key string) *LineItem {
	for i := range c.Items {
		if c.Items[i].VariantKey() == key {
			return &c.Items[i]
		}
	}
	return nil
}

func (c *Cart) findByID(lineItemID string) int {
	for i := range c.Items {
		if c.Items[i].ID == lineItemID {
			return i
		}
	}
	return -1
}

func (c *Cart) removeAt(i int) {
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}
