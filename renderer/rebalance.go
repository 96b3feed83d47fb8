package renderer

import (
	"fmt"
	"strings"

	"github.com/mpelletier/rebalance"
)

// RebalanceMarkdown renders the unconstrained rebalance: actual versus
// target weights and the signed trade that closes the gap, most underweight
// holding first. Negative quantities are implied sells.
func RebalanceMarkdown(c *rebalance.CorePortfolio) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Rebalance\n\n")
	fmt.Fprintf(&b, "Core value: %s, satellite value: %s\n\n", dollar(c.TotalValue), dollar(c.TotalSatelliteValue))
	fmt.Fprintln(&b, "| Ticker | Quantity | Price | Actual | Target | Target Qty | Trade Qty | Cost |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|---:|")
	for _, row := range c.RowsByCost() {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %d | %+d | %s |\n",
			row.Ticker,
			row.Quantity,
			dollar(row.ClosingPrice),
			rebalance.PercentOf(row.ActualAllocation),
			rebalance.PercentOf(row.TargetAllocation),
			row.TargetQuantity,
			row.RebalanceQuantity,
			signedDollar(row.RebalancingCost),
		)
	}
	return b.String()
}

// NoSellMarkdown renders the buy-only plan and its summary totals.
func NoSellMarkdown(p *rebalance.NoSellPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# No-Sell Rebalance\n\n")
	if p.AnchorTicker != "" {
		fmt.Fprintf(&b, "Anchored on %s (already at or past its target weight).\n\n", p.AnchorTicker)
	}
	fmt.Fprintln(&b, "| Ticker | Quantity | Price | Target Qty | Buy Qty | Cost | Updated |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|:---|")
	for _, row := range p.Rows {
		fmt.Fprintf(&b, "| %s | %d | %s | %d | %d | %s | %s |\n",
			row.Ticker,
			row.Quantity,
			dollar(row.ClosingPrice),
			row.TargetQuantityNoSell,
			row.RebalanceQuantityNoSell,
			dollar(row.RebalancingCostNoSell),
			row.UpdateDate,
		)
	}
	fmt.Fprintf(&b, "\nThe cost to rebalance the core portfolio is %s.\n", dollar(p.TotalCost))
	fmt.Fprintf(&b, "\nThis would make the total value of the core portfolio %s.\n", dollar(p.CoreValueAfter))
	fmt.Fprintf(&b, "\nThe total value of satellite and core portfolio after rebalancing would be %s.\n", dollar(p.PortfolioValueAfter))
	return b.String()
}

// SpendMarkdown renders a purchase plan from a spend simulation.
func SpendMarkdown(p *rebalance.PurchasePlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Spend Scenario\n\n")
	if len(p.Purchases) == 0 {
		fmt.Fprintf(&b, "Nothing affordable: no holding's price fits the budget.\n")
		return b.String()
	}
	fmt.Fprintln(&b, "| Ticker | Units | Avg Unit Cost | Total Cost |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, buy := range p.Purchases {
		fmt.Fprintf(&b, "| %s | %d | %s | %s |\n",
			buy.Ticker,
			buy.Units,
			dollar(buy.AvgUnitCost),
			dollar(buy.TotalCost),
		)
	}
	fmt.Fprintf(&b, "\nTotal spent: %s, remaining cash: %s\n", dollar(p.TotalSpent), dollar(p.Remaining))
	return b.String()
}
