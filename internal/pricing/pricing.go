// Package pricing derives order totals from cart state and a discount
// specification. Totals are a pure function of their inputs, recomputed
// from scratch on every call.
package pricing

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/rahathosen/cafe-pos/internal/cart"
	"github.com/rahathosen/cafe-pos/internal/enum"
)

// Flat 8% tax on the discounted subtotal.
var taxRate = decimal.New(8, -2)

var hundred = decimal.NewFromInt(100)

// Discount inputs may be digits with at most one decimal point. Anything
// else is rejected at the input boundary before it reaches the calculator.
var discountInputPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

// ValidInput reports whether s is acceptable discount text. The empty
// string is valid and computes as zero.
func ValidInput(s string) bool {
	return discountInputPattern.MatchString(s)
}

// DiscountSpec is the user-entered discount: a mode plus the raw text value.
type DiscountSpec struct {
	Mode  string
	Value string
}

// Amount parses the raw value; unparseable or empty input is zero.
func (s DiscountSpec) Amount() decimal.Decimal {
	d, err := decimal.NewFromString(s.Value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Totals is the derived pricing of the current order.
type Totals struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	DiscountAmount decimal.Decimal `json:"discount_amount"`
	Tax            decimal.Decimal `json:"tax"`
	Total          decimal.Decimal `json:"total"`
}

// Calculator computes order totals.
//
// ClampDiscount limits the discount to [0, subtotal]. The terminal this
// replaces never clamped, so a flat discount larger than the order yields a
// negative discounted subtotal, tax and total; that behavior is kept as the
// default pending a policy decision.
type Calculator struct {
	ClampDiscount bool
}

// Totals computes subtotal, discount, tax and total for the given lines.
// Line order does not affect the result.
func (c Calculator) Totals(lines []cart.Line, spec DiscountSpec) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	value := spec.Amount()
	discount := decimal.Zero
	switch spec.Mode {
	case enum.DiscountModePercentage:
		discount = subtotal.Mul(value).Div(hundred)
	case enum.DiscountModeFlat:
		discount = value
	}

	if c.ClampDiscount {
		if discount.IsNegative() {
			discount = decimal.Zero
		}
		if discount.GreaterThan(subtotal) {
			discount = subtotal
		}
	}

	discounted := subtotal.Sub(discount)
	tax := discounted.Mul(taxRate)

	return Totals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		Tax:            tax,
		Total:          discounted.Add(tax),
	}
}
