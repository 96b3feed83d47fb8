package rebalance

import "errors"

// Error values for the data-validation failures the engines can report.
// They are always returned wrapped with the offending row, so callers can
// test with errors.Is and still log a precise message.
var (
	// ErrBadAllocation rejects a model whose target allocations do not sum
	// to 1.00 at two-decimal precision. This one is fatal: no portfolio is
	// constructed from such a model.
	ErrBadAllocation = errors.New("model target allocations must sum to 1.00")

	// ErrUnknownTicker reports an operation addressed to a ticker that is
	// not in the holdings table. The table is left untouched.
	ErrUnknownTicker = errors.New("ticker not found in holdings")

	// ErrUnknownCurrency reports a holding whose currency is neither the
	// home nor the foreign code. Valuation refuses to guess.
	ErrUnknownCurrency = errors.New("unrecognized currency code")

	// ErrNonPositivePrice reports a core holding with a zero or negative
	// closing price. Prices divide in the target quantity computation, so
	// this is a data error, not a computable case.
	ErrNonPositivePrice = errors.New("closing price must be positive")

	// ErrNegativeQuantity reports an attempt to set a negative quantity.
	ErrNegativeQuantity = errors.New("quantity must not be negative")

	// ErrDuplicateTicker reports two holdings or model rows sharing a ticker.
	ErrDuplicateTicker = errors.New("duplicate ticker")
)
