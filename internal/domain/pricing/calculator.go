// Package pricing implements the canonical monetary breakdown used everywhere
// a quote or invoice total is shown: persisted records, PDF rendering, and the
// live-preview API. There is exactly one implementation of this arithmetic so
// the persisted truth can never drift from what the client previews.
package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// LineItem is one priced row of a quote or invoice.
type LineItem struct {
	Quantity  int
	UnitPrice decimal.Decimal
}

// Rates holds the percentage and flat-charge inputs of the breakdown.
// All values are non-negative; validation happens at the request boundary,
// the calculator itself is a total function.
type Rates struct {
	DiscountPercent decimal.Decimal
	CGSTPercent     decimal.Decimal
	SGSTPercent     decimal.Decimal
	IGSTPercent     decimal.Decimal
	ShippingCharges decimal.Decimal
}

// Breakdown is the derived monetary snapshot.
// Invariant: Total = TaxableAmount + CGST + SGST + IGST + ShippingCharges,
// where TaxableAmount = SubTotal - DiscountAmount and each tax is computed
// independently on TaxableAmount (taxes never compound on each other).
type Breakdown struct {
	SubTotal        decimal.Decimal
	DiscountAmount  decimal.Decimal
	TaxableAmount   decimal.Decimal
	CGSTAmount      decimal.Decimal
	SGSTAmount      decimal.Decimal
	IGSTAmount      decimal.Decimal
	ShippingCharges decimal.Decimal
	Total           decimal.Decimal
}

// Compute derives the full breakdown from line items and rate inputs.
// Order is fixed: subtotal, discount, taxable base, the three GST components
// on that same base, then shipping added last. Full precision is kept
// internally; rounding to two decimals happens only at presentation.
func Compute(items []LineItem, rates Rates) Breakdown {
	subtotal := decimal.Zero
	for _, item := range items {
		line := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	discount := subtotal.Mul(rates.DiscountPercent).Div(hundred)
	taxable := subtotal.Sub(discount)

	cgst := taxable.Mul(rates.CGSTPercent).Div(hundred)
	sgst := taxable.Mul(rates.SGSTPercent).Div(hundred)
	igst := taxable.Mul(rates.IGSTPercent).Div(hundred)

	total := taxable.Add(cgst).Add(sgst).Add(igst).Add(rates.ShippingCharges)

	return Breakdown{
		SubTotal:        subtotal,
		DiscountAmount:  discount,
		TaxableAmount:   taxable,
		CGSTAmount:      cgst,
		SGSTAmount:      sgst,
		IGSTAmount:      igst,
		ShippingCharges: rates.ShippingCharges,
		Total:           total,
	}
}

// LineSubTotal returns quantity x unit price for a single item.
func LineSubTotal(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// PercentFromAmount inverts a derived amount back to its percentage of the
// taxable base, used when loading a persisted quote into an edit form.
// A zero base yields zero percent rather than a division error.
func PercentFromAmount(amount, taxableAmount decimal.Decimal) decimal.Decimal {
	if taxableAmount.IsZero() {
		return decimal.Zero
	}
	return amount.Div(taxableAmount).Mul(hundred)
}

// DiscountPercentFromAmount inverts the discount amount against the original
// subtotal (the discount is taken before the taxable base exists).
func DiscountPercentFromAmount(amount, subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.IsZero() {
		return decimal.Zero
	}
	return amount.Div(subtotal).Mul(hundred)
}
