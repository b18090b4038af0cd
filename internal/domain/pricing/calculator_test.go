package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestComputeIntraStateGST(t *testing.T) {
	// 2 x 500 with 10% discount, 9% CGST + 9% SGST, 50 shipping.
	items := []LineItem{{Quantity: 2, UnitPrice: dec("500")}}
	rates := Rates{
		DiscountPercent: dec("10"),
		CGSTPercent:     dec("9"),
		SGSTPercent:     dec("9"),
		IGSTPercent:     decimal.Zero,
		ShippingCharges: dec("50"),
	}

	b := Compute(items, rates)

	assert.True(t, b.SubTotal.Equal(dec("1000")), "subtotal = %s", b.SubTotal)
	assert.True(t, b.DiscountAmount.Equal(dec("100")), "discount = %s", b.DiscountAmount)
	assert.True(t, b.TaxableAmount.Equal(dec("900")), "taxable = %s", b.TaxableAmount)
	assert.True(t, b.CGSTAmount.Equal(dec("81")), "cgst = %s", b.CGSTAmount)
	assert.True(t, b.SGSTAmount.Equal(dec("81")), "sgst = %s", b.SGSTAmount)
	assert.True(t, b.IGSTAmount.IsZero(), "igst = %s", b.IGSTAmount)
	assert.True(t, b.Total.Equal(dec("1112")), "total = %s", b.Total)
}

func TestComputeTotalInvariant(t *testing.T) {
	items := []LineItem{
		{Quantity: 3, UnitPrice: dec("199.99")},
		{Quantity: 1, UnitPrice: dec("49.50")},
		{Quantity: 12, UnitPrice: dec("7.25")},
	}
	rates := Rates{
		DiscountPercent: dec("12.5"),
		CGSTPercent:     dec("2.5"),
		SGSTPercent:     dec("2.5"),
		IGSTPercent:     dec("18"),
		ShippingCharges: dec("120.40"),
	}

	b := Compute(items, rates)

	wantSubtotal := dec("199.99").Mul(dec("3")).Add(dec("49.50")).Add(dec("7.25").Mul(dec("12")))
	assert.True(t, b.SubTotal.Equal(wantSubtotal))

	// total = taxable + cgst + sgst + igst + shipping, exactly.
	sum := b.TaxableAmount.Add(b.CGSTAmount).Add(b.SGSTAmount).Add(b.IGSTAmount).Add(b.ShippingCharges)
	assert.True(t, b.Total.Equal(sum), "total %s != component sum %s", b.Total, sum)

	// taxes share the same base and never compound.
	assert.True(t, b.CGSTAmount.Equal(b.TaxableAmount.Mul(dec("2.5")).Div(dec("100"))))
	assert.True(t, b.IGSTAmount.Equal(b.TaxableAmount.Mul(dec("18")).Div(dec("100"))))
}

func TestComputeZeroPercentagesProduceZeroAmounts(t *testing.T) {
	items := []LineItem{{Quantity: 4, UnitPrice: dec("25")}}

	b := Compute(items, Rates{})

	assert.True(t, b.SubTotal.Equal(dec("100")))
	assert.True(t, b.DiscountAmount.IsZero())
	assert.True(t, b.CGSTAmount.IsZero())
	assert.True(t, b.SGSTAmount.IsZero())
	assert.True(t, b.IGSTAmount.IsZero())
	assert.True(t, b.Total.Equal(dec("100")))
}

func TestComputeNoItems(t *testing.T) {
	b := Compute(nil, Rates{ShippingCharges: dec("10")})

	assert.True(t, b.SubTotal.IsZero())
	assert.True(t, b.Total.Equal(dec("10")))
}

func TestPercentRoundTrip(t *testing.T) {
	// Loading a persisted quote for editing inverts amounts back to
	// percentages; recomputing from those must reproduce the amounts
	// within currency rounding tolerance.
	items := []LineItem{
		{Quantity: 7, UnitPrice: dec("142.85")},
		{Quantity: 2, UnitPrice: dec("999.99")},
	}
	rates := Rates{
		DiscountPercent: dec("7.75"),
		CGSTPercent:     dec("9"),
		SGSTPercent:     dec("9"),
		IGSTPercent:     decimal.Zero,
		ShippingCharges: dec("75"),
	}

	b := Compute(items, rates)

	recovered := Rates{
		DiscountPercent: DiscountPercentFromAmount(b.DiscountAmount, b.SubTotal),
		CGSTPercent:     PercentFromAmount(b.CGSTAmount, b.TaxableAmount),
		SGSTPercent:     PercentFromAmount(b.SGSTAmount, b.TaxableAmount),
		IGSTPercent:     PercentFromAmount(b.IGSTAmount, b.TaxableAmount),
		ShippingCharges: b.ShippingCharges,
	}

	again := Compute(items, recovered)

	tolerance := dec("0.01")
	for name, pair := range map[string][2]decimal.Decimal{
		"discount": {b.DiscountAmount, again.DiscountAmount},
		"cgst":     {b.CGSTAmount, again.CGSTAmount},
		"sgst":     {b.SGSTAmount, again.SGSTAmount},
		"total":    {b.Total, again.Total},
	} {
		diff := pair[0].Sub(pair[1]).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance), "%s drifted by %s", name, diff)
	}
}

func TestPercentFromAmountZeroBase(t *testing.T) {
	require.True(t, PercentFromAmount(dec("81"), decimal.Zero).IsZero())
	require.True(t, DiscountPercentFromAmount(dec("100"), decimal.Zero).IsZero())
}

func TestLineSubTotal(t *testing.T) {
	assert.True(t, LineSubTotal(3, dec("10.10")).Equal(dec("30.30")))
	assert.True(t, LineSubTotal(0, dec("10")).IsZero())
}
