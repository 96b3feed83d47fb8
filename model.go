package rebalance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// ModelAllocation is one row of the target model: a ticker and the fraction
// of the core portfolio it should represent.
type ModelAllocation struct {
	Ticker           string
	TargetAllocation decimal.Decimal // fraction in [0,1]
}

// Model is the read-only target allocation table.
type Model struct {
	rows  []ModelAllocation
	index map[string]decimal.Decimal
}

// NewModel builds and validates a model. The target allocations must sum to
// 1.00 once rounded to two decimals; anything else is a configuration error
// and no model is constructed.
func NewModel(rows ...ModelAllocation) (*Model, error) {
	m := &Model{index: make(map[string]decimal.Decimal, len(rows))}
	sum := decimal.Zero
	for _, row := range rows {
		row.Ticker = strings.ToUpper(row.Ticker)
		if _, exists := m.index[row.Ticker]; exists {
			return nil, fmt.Errorf("model %q: %w", row.Ticker, ErrDuplicateTicker)
		}
		m.index[row.Ticker] = row.TargetAllocation
		m.rows = append(m.rows, row)
		sum = sum.Add(row.TargetAllocation)
	}
	if !sum.Round(2).Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("allocations sum to %s: %w", sum, ErrBadAllocation)
	}
	slices.SortFunc(m.rows, func(a, b ModelAllocation) int { return strings.Compare(a.Ticker, b.Ticker) })
	return m, nil
}

// Len returns the number of model rows.
func (m *Model) Len() int { return len(m.rows) }

// Rows returns a copy of the rows in ticker order.
func (m *Model) Rows() []ModelAllocation { return slices.Clone(m.rows) }

// Target returns the target allocation for ticker.
func (m *Model) Target(ticker string) (decimal.Decimal, bool) {
	t, ok := m.index[strings.ToUpper(ticker)]
	return t, ok
}
