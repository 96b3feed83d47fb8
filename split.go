package rebalance

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// CoreHolding is a holding joined with its model row, plus the columns the
// rebalance engines derive from it. Values and costs are notionals in the
// listing currency, exactly as the holdings table carries them.
type CoreHolding struct {
	Holding
	TargetAllocation decimal.Decimal
	ActualAllocation decimal.Decimal

	// unconstrained rebalance (Rebalance)
	TargetValue       decimal.Decimal
	TargetQuantity    int64
	RebalanceQuantity int64 // negative implies a sell
	RebalancingCost   decimal.Decimal

	// buy-only rebalance (NoSell)
	FractionalValueNoSell   decimal.Decimal
	TargetQuantityNoSell    int64
	RebalanceQuantityNoSell int64 // clamped at zero, never a sell
	RebalancingCostNoSell   decimal.Decimal
}

// CorePortfolio is the model-tracked subset of the holdings, with the
// satellite remainder carried alongside for aggregate valuation.
type CorePortfolio struct {
	rows []CoreHolding // ticker order

	TotalValue          decimal.Decimal // Σ core TotalValue
	Satellite           []Holding       // rows absent from the model, ticker order
	TotalSatelliteValue decimal.Decimal

	rebalanced bool
}

// Split partitions valuated holdings into the core (inner join with the
// model on ticker) and the satellite (everything else), and computes the
// actual allocation of every core row.
//
// Core rows must carry a positive closing price: prices divide in the
// target-quantity step, so a non-positive one is a data error. Split always
// recomputes from scratch; derived state never survives a holdings change.
func Split(h *Holdings, m *Model) (*CorePortfolio, error) {
	c := &CorePortfolio{}
	for _, row := range h.rows {
		if _, ok := m.Target(row.Ticker); !ok {
			c.Satellite = append(c.Satellite, row)
			c.TotalSatelliteValue = c.TotalSatelliteValue.Add(row.TotalValue)
			continue
		}
		if !row.ClosingPrice.IsPositive() {
			return nil, fmt.Errorf("core holding %q price %s: %w", row.Ticker, row.ClosingPrice, ErrNonPositivePrice)
		}
		target, _ := m.Target(row.Ticker)
		c.rows = append(c.rows, CoreHolding{Holding: row, TargetAllocation: target})
		c.TotalValue = c.TotalValue.Add(row.TotalValue)
	}
	c.allocate()
	return c, nil
}

// allocate recomputes ActualAllocation from the current row values.
func (c *CorePortfolio) allocate() {
	for i := range c.rows {
		if c.TotalValue.IsZero() {
			c.rows[i].ActualAllocation = decimal.Zero
			continue
		}
		c.rows[i].ActualAllocation = c.rows[i].TotalValue.Div(c.TotalValue)
	}
}

// Len returns the number of core rows.
func (c *CorePortfolio) Len() int { return len(c.rows) }

// Rows returns a copy of the core rows in ticker order.
func (c *CorePortfolio) Rows() []CoreHolding { return slices.Clone(c.rows) }

// Get returns the core row for ticker.
func (c *CorePortfolio) Get(ticker string) (CoreHolding, bool) {
	ticker = strings.ToUpper(ticker)
	for _, row := range c.rows {
		if row.Ticker == ticker {
			return row, true
		}
	}
	return CoreHolding{}, false
}

// clone returns an independent working copy, used by the spend simulator.
func (c *CorePortfolio) clone() *CorePortfolio {
	return &CorePortfolio{
		rows:                slices.Clone(c.rows),
		TotalValue:          c.TotalValue,
		Satellite:           slices.Clone(c.Satellite),
		TotalSatelliteValue: c.TotalSatelliteValue,
		rebalanced:          c.rebalanced,
	}
}
