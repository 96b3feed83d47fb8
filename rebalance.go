package rebalance

import (
	"slices"

	"github.com/shopspring/decimal"
)

// NoSellPlan is the buy-only rebalancing plan derived from a core portfolio.
type NoSellPlan struct {
	// AnchorTicker names the holding with the minimum unconstrained
	// rebalancing cost; its actual value defines the plan's scale and it
	// requires zero additional purchase by construction.
	AnchorTicker string
	// MaxRebalancedValue is anchor.TotalValue / anchor.TargetAllocation:
	// the core value at which every position reaches its target weight
	// without selling the anchor.
	MaxRebalancedValue decimal.Decimal

	// Rows in descending RebalancingCostNoSell order.
	Rows []CoreHolding

	// TotalCost is the cash required to execute the plan.
	TotalCost decimal.Decimal
	// CoreValueAfter is the core value once the plan is executed.
	CoreValueAfter decimal.Decimal
	// PortfolioValueAfter adds the satellite value to CoreValueAfter.
	PortfolioValueAfter decimal.Decimal
}

// Rebalance computes the unconstrained targets for every core row: the
// quantity each position should reach for the core to match the model at its
// current total value. Overweight positions come out with a negative
// rebalance quantity, an implied sell.
//
// The computation is idempotent: it depends only on quantity, price and
// target, all of which it leaves untouched.
func (c *CorePortfolio) Rebalance() {
	for i := range c.rows {
		row := &c.rows[i]
		row.TargetValue = row.TargetAllocation.Mul(c.TotalValue)
		row.TargetQuantity = row.TargetValue.Div(row.ClosingPrice).Ceil().IntPart()
		row.RebalanceQuantity = row.TargetQuantity - row.Quantity
		row.RebalancingCost = row.ClosingPrice.Mul(decimal.NewFromInt(row.RebalanceQuantity))
	}
	c.rebalanced = true
}

// RowsByCost returns the core rows ordered by descending rebalancing cost,
// the most underweight first. Equal costs fall back to ticker order.
func (c *CorePortfolio) RowsByCost() []CoreHolding {
	rows := slices.Clone(c.rows)
	slices.SortStableFunc(rows, func(a, b CoreHolding) int {
		return b.RebalancingCost.Cmp(a.RebalancingCost)
	})
	return rows
}

// anchor returns the index of the row with the minimum rebalancing cost.
// Ties resolve to the lexicographically first ticker, since rows are kept in
// ticker order and only a strictly smaller cost displaces the pick.
func (c *CorePortfolio) anchor() int {
	best := 0
	for i := 1; i < len(c.rows); i++ {
		if c.rows[i].RebalancingCost.LessThan(c.rows[best].RebalancingCost) {
			best = i
		}
	}
	return best
}

// NoSell derives the buy-only plan. The anchor (minimum rebalancing cost,
// i.e. the least costly to rebalance) keeps its current value; every other
// position is scaled up proportionally to its target weight so the anchor
// lands exactly on target without a sell.
//
// The scale can leave a position that is even more overweight than the
// anchor, relative to its target, with a computed purchase below zero; those
// quantities are clamped to zero so the plan stays strictly buy-only.
//
// NoSell reads the unconstrained rebalancing costs to pick the anchor, and
// runs Rebalance first when the caller has not.
func (c *CorePortfolio) NoSell() *NoSellPlan {
	if !c.rebalanced {
		c.Rebalance()
	}
	if len(c.rows) == 0 {
		return &NoSellPlan{PortfolioValueAfter: c.TotalSatelliteValue}
	}

	a := c.rows[c.anchor()]
	maxValue := decimal.Zero
	if a.TargetAllocation.IsPositive() {
		maxValue = a.TotalValue.Div(a.TargetAllocation)
	}

	plan := &NoSellPlan{AnchorTicker: a.Ticker, MaxRebalancedValue: maxValue}
	for i := range c.rows {
		row := c.rows[i]
		row.FractionalValueNoSell = row.TargetAllocation.Mul(maxValue)
		row.TargetQuantityNoSell = row.FractionalValueNoSell.Div(row.ClosingPrice).Ceil().IntPart()
		row.RebalanceQuantityNoSell = row.TargetQuantityNoSell - row.Quantity
		if row.RebalanceQuantityNoSell < 0 {
			row.RebalanceQuantityNoSell = 0
		}
		row.RebalancingCostNoSell = row.ClosingPrice.Mul(decimal.NewFromInt(row.RebalanceQuantityNoSell))
		c.rows[i] = row

		plan.Rows = append(plan.Rows, row)
		plan.TotalCost = plan.TotalCost.Add(row.RebalancingCostNoSell)
	}
	slices.SortStableFunc(plan.Rows, func(a, b CoreHolding) int {
		return b.RebalancingCostNoSell.Cmp(a.RebalancingCostNoSell)
	})
	plan.CoreValueAfter = c.TotalValue.Add(plan.TotalCost)
	plan.PortfolioValueAfter = plan.CoreValueAfter.Add(c.TotalSatelliteValue)
	return plan
}
