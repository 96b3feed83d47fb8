package renderer

import "github.com/shopspring/decimal"

// dollar formats an engine notional for display. Engine values are plain
// amounts in the listing currency, so no thousands separator magic here.
func dollar(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// signedDollar is like dollar with an explicit sign, and "-" for zero.
func signedDollar(d decimal.Decimal) string {
	if d.IsZero() {
		return "-"
	}
	if d.IsPositive() {
		return "+" + dollar(d)
	}
	return "-$" + d.Neg().StringFixed(2)
}
