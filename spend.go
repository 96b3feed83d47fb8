package rebalance

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Purchase is the accumulated buys of a single ticker in a spend simulation.
type Purchase struct {
	Ticker      string
	Units       int64
	TotalCost   decimal.Decimal
	AvgUnitCost decimal.Decimal
}

// PurchasePlan is the outcome of a spend simulation.
type PurchasePlan struct {
	Purchases  []Purchase // ticker order
	TotalSpent decimal.Decimal
	Remaining  decimal.Decimal
}

// SimulateSpend greedily deploys cash across the core holdings, one share at
// a time, always buying the most underweight holding (highest rebalancing
// cost) that is still affordable. After every purchase the core values and
// rebalancing costs are recomputed, so each pick reflects the one before.
// The loop stops when no holding's price fits in the remaining cash.
//
// A non-positive cash amount is a degenerate input, not an error: the plan
// is empty. The simulation runs on an independent working copy; the caller's
// core portfolio is never mutated.
func SimulateSpend(core *CorePortfolio, cash decimal.Decimal) *PurchasePlan {
	plan := &PurchasePlan{Remaining: cash}
	if !cash.IsPositive() || core.Len() == 0 {
		return plan
	}

	work := core.clone()
	work.Rebalance()
	units := make(map[string]int64)

	for {
		// pick the highest rebalancing cost among affordable rows; ties
		// resolve to the first ticker in order.
		pick := -1
		for i, row := range work.rows {
			if row.ClosingPrice.GreaterThan(plan.Remaining) {
				continue
			}
			if pick < 0 || row.RebalancingCost.GreaterThan(work.rows[pick].RebalancingCost) {
				pick = i
			}
		}
		if pick < 0 {
			break
		}

		price := work.rows[pick].ClosingPrice
		units[work.rows[pick].Ticker]++
		plan.Remaining = plan.Remaining.Sub(price)
		plan.TotalSpent = plan.TotalSpent.Add(price)

		// one more share: revalue the row, then rebalance the whole working
		// set so the next pick sees the new weights.
		work.rows[pick].Quantity++
		work.revalue()
		work.Rebalance()
	}

	for ticker, n := range units {
		row, _ := work.Get(ticker)
		cost := row.ClosingPrice.Mul(decimal.NewFromInt(n))
		plan.Purchases = append(plan.Purchases, Purchase{
			Ticker:      ticker,
			Units:       n,
			TotalCost:   cost,
			AvgUnitCost: cost.Div(decimal.NewFromInt(n)),
		})
	}
	slices.SortFunc(plan.Purchases, func(a, b Purchase) int { return strings.Compare(a.Ticker, b.Ticker) })
	return plan
}

// revalue recomputes row and total values from quantity × price, then the
// actual allocations. Prices are fixed during a simulation, so no FX or
// currency work is needed here.
func (c *CorePortfolio) revalue() {
	c.TotalValue = decimal.Zero
	for i := range c.rows {
		c.rows[i].TotalValue = c.rows[i].ClosingPrice.Mul(decimal.NewFromInt(c.rows[i].Quantity))
		c.TotalValue = c.TotalValue.Add(c.rows[i].TotalValue)
	}
	c.allocate()
}
