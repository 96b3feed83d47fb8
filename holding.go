package rebalance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mpelletier/rebalance/date"
	"github.com/shopspring/decimal"
)

// Holding is one row of the holdings table: a position currently owned.
//
// ClosingPrice and TotalValue are expressed in the listing currency;
// TotalValueHome is the same notional converted to the home currency and is
// only set by Valuate.
type Holding struct {
	Ticker       string
	Exchange     string
	Quantity     int64
	ClosingPrice decimal.Decimal
	Currency     string
	UpdateDate   date.Date

	// derived by Valuate
	TotalValue     decimal.Decimal
	TotalValueHome Money
}

// Holdings is the in-memory holdings table.
//
// Rows are unique by ticker and kept sorted lexicographically by ticker;
// that order is the deterministic tie-break everywhere a row has to be
// picked "first" among equals.
type Holdings struct {
	rows  []Holding
	index map[string]int // ticker -> position in rows
}

// NewHoldings builds a holdings table from rows. It rejects duplicate
// tickers and negative quantities.
func NewHoldings(rows ...Holding) (*Holdings, error) {
	h := &Holdings{index: make(map[string]int, len(rows))}
	for _, row := range rows {
		row.Ticker = strings.ToUpper(row.Ticker)
		if row.Quantity < 0 {
			return nil, fmt.Errorf("holding %q: %w", row.Ticker, ErrNegativeQuantity)
		}
		if _, exists := h.index[row.Ticker]; exists {
			return nil, fmt.Errorf("holding %q: %w", row.Ticker, ErrDuplicateTicker)
		}
		h.index[row.Ticker] = 0 // fixed after the sort
		h.rows = append(h.rows, row)
	}
	slices.SortFunc(h.rows, func(a, b Holding) int { return strings.Compare(a.Ticker, b.Ticker) })
	h.reindex()
	return h, nil
}

func (h *Holdings) reindex() {
	for i, row := range h.rows {
		h.index[row.Ticker] = i
	}
}

// Len returns the number of rows.
func (h *Holdings) Len() int { return len(h.rows) }

// Rows returns a copy of the rows in ticker order.
func (h *Holdings) Rows() []Holding { return slices.Clone(h.rows) }

// Get returns the row for ticker.
func (h *Holdings) Get(ticker string) (Holding, bool) {
	i, ok := h.index[strings.ToUpper(ticker)]
	if !ok {
		return Holding{}, false
	}
	return h.rows[i], true
}

// SetQuantity replaces the quantity of the given ticker. On error the table
// is unchanged.
func (h *Holdings) SetQuantity(ticker string, quantity int64) error {
	if quantity < 0 {
		return fmt.Errorf("set quantity %q: %w", ticker, ErrNegativeQuantity)
	}
	i, ok := h.index[strings.ToUpper(ticker)]
	if !ok {
		return fmt.Errorf("set quantity %q: %w", ticker, ErrUnknownTicker)
	}
	h.rows[i].Quantity = quantity
	return nil
}

// setPrice replaces the closing price and its observation date for ticker.
func (h *Holdings) setPrice(ticker string, price decimal.Decimal, asOf date.Date) error {
	i, ok := h.index[strings.ToUpper(ticker)]
	if !ok {
		return fmt.Errorf("set price %q: %w", ticker, ErrUnknownTicker)
	}
	h.rows[i].ClosingPrice = price
	h.rows[i].UpdateDate = asOf
	return nil
}

// Clone returns an independent deep copy of the table.
func (h *Holdings) Clone() *Holdings {
	c := &Holdings{rows: slices.Clone(h.rows), index: make(map[string]int, len(h.rows))}
	c.reindex()
	return c
}

// LastUpdated returns the most recent price observation date across all rows.
func (h *Holdings) LastUpdated() date.Date {
	var last date.Date
	for _, row := range h.rows {
		if row.UpdateDate.After(last) {
			last = row.UpdateDate
		}
	}
	return last
}

// TotalHomeValue sums the home-currency value of all rows. It is only
// meaningful after Valuate.
func (h *Holdings) TotalHomeValue() Money {
	var total Money
	for _, row := range h.rows {
		total = total.Add(row.TotalValueHome)
	}
	return total
}
