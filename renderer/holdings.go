// Package renderer renders portfolio reports to markdown.
package renderer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mpelletier/rebalance"
)

// HoldingsMarkdown renders the valuated holdings table, largest position
// first, with the home-currency total underneath.
func HoldingsMarkdown(h *rebalance.Holdings) string {
	rows := h.Rows()
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalValue.GreaterThan(rows[j].TotalValue)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	fmt.Fprintf(&b, "Updated as of %s.\n\n", h.LastUpdated())
	fmt.Fprintln(&b, "| Ticker | Quantity | Closing Price | Value | Currency | Updated |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|:---:|:---|")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s |\n",
			row.Ticker,
			row.Quantity,
			dollar(row.ClosingPrice),
			dollar(row.TotalValue),
			row.Currency,
			row.UpdateDate,
		)
	}
	fmt.Fprintf(&b, "\nTotal value (%s): %s\n", rebalance.HomeCurrency, h.TotalHomeValue())
	return b.String()
}
