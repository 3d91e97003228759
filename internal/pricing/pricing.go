package pricing

import "github.com/shopspring/decimal"

// ShippingMethod selects which fee rule applies to an order.
type ShippingMethod string

const (
	ShippingStandard ShippingMethod = "standard"
	ShippingExpress  ShippingMethod = "express"
)

// Valid reports whether m is a known shipping method.
func (m ShippingMethod) Valid() bool {
	return m == ShippingStandard || m == ShippingExpress
}

// Fee rule constants. These live only here; cart totals and checkout both
// call Compute rather than carrying their own copy of the rule.
var (
	freeShippingThreshold = decimal.NewFromInt(50)
	standardFee           = decimal.NewFromInt(5)
	expressFee            = decimal.NewFromInt(15)
	taxRate               = decimal.NewFromFloat(0.10)
)

// Line is the minimal view of a cart or order line the calculator needs.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Breakdown holds the derived totals for a set of lines. It is never stored
// on its own except as the snapshot frozen into an order at creation time.
type Breakdown struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	ShippingFee decimal.Decimal `json:"shippingFee"`
	Tax         decimal.Decimal `json:"tax"`
	Discount    decimal.Decimal `json:"discount"`
	Total       decimal.Decimal `json:"total"`
}

// Compute derives the full breakdown for the given lines, shipping method and
// externally supplied discount (pass decimal.Zero when there is none).
//
// The shipping fee rule applies even over an empty line list: a zero subtotal
// under standard shipping still pays the flat fee. The total is not clamped;
// a discount larger than subtotal+fee+tax produces a negative total.
func Compute(lines []Line, method ShippingMethod, discount decimal.Decimal) Breakdown {
	subtotal := decimal.Zero
	for _, l := range lines {
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	subtotal = subtotal.Round(2)

	fee := ShippingFee(method, subtotal)
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(fee).Add(tax).Sub(discount).Round(2)

	return Breakdown{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Tax:         tax,
		Discount:    discount,
		Total:       total,
	}
}

// ShippingFee returns the fee for a method at a given subtotal:
// standard is free above the threshold and a flat fee otherwise,
// express is always the flat express fee.
func ShippingFee(method ShippingMethod, subtotal decimal.Decimal) decimal.Decimal {
	if method == ShippingExpress {
		return expressFee
	}
	if subtotal.GreaterThan(freeShippingThreshold) {
		return decimal.Zero
	}
	return standardFee
}
