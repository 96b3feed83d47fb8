package rebalance

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Recognized currency codes. Every holding is listed in one of the two; the
// exchange rate converts from the foreign to the home currency.
const (
	HomeCurrency    = "CAD"
	ForeignCurrency = "USD"
)

// Valuate returns a copy of the holdings table with TotalValue and
// TotalValueHome computed for every row.
//
// TotalValue is price × quantity in the listing currency. TotalValueHome
// applies fxRate when the row is listed in the foreign currency and is the
// identity otherwise. A currency that is neither code is a data error: the
// function refuses to default it.
func Valuate(h *Holdings, fxRate decimal.Decimal) (*Holdings, error) {
	out := h.Clone()
	for i, row := range out.rows {
		value := row.ClosingPrice.Mul(decimal.NewFromInt(row.Quantity))
		out.rows[i].TotalValue = value
		switch row.Currency {
		case HomeCurrency:
			out.rows[i].TotalValueHome = M(value, HomeCurrency)
		case ForeignCurrency:
			out.rows[i].TotalValueHome = M(value.Mul(fxRate), HomeCurrency)
		default:
			return nil, fmt.Errorf("holding %q currency %q: %w", row.Ticker, row.Currency, ErrUnknownCurrency)
		}
	}
	return out, nil
}
