package rebalance

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSimulateSpend(t *testing.T) {
	c := vcnXawCore(t)
	plan := SimulateSpend(c, dec("25"))

	// VCN is the underweight holding. Two shares at 10 fit in 25; after
	// those, neither price fits in the remaining 5.
	if len(plan.Purchases) != 1 {
		t.Fatalf("Purchases = %+v, want a single VCN line", plan.Purchases)
	}
	p := plan.Purchases[0]
	if p.Ticker != "VCN" || p.Units != 2 {
		t.Errorf("Purchase = %s ×%d, want VCN ×2", p.Ticker, p.Units)
	}
	if !p.TotalCost.Equal(dec("20")) {
		t.Errorf("TotalCost = %s, want 20", p.TotalCost)
	}
	if !p.AvgUnitCost.Equal(dec("10")) {
		t.Errorf("AvgUnitCost = %s, want 10", p.AvgUnitCost)
	}
	if !plan.TotalSpent.Equal(dec("20")) {
		t.Errorf("plan TotalSpent = %s, want 20", plan.TotalSpent)
	}
	if !plan.Remaining.Equal(dec("5")) {
		t.Errorf("plan Remaining = %s, want 5", plan.Remaining)
	}
}

func TestSimulateSpendNeverOverspends(t *testing.T) {
	c := vcnXawCore(t)
	for _, cash := range []string{"10", "35", "100", "999.99"} {
		plan := SimulateSpend(c, dec(cash))
		if plan.TotalSpent.GreaterThan(dec(cash)) {
			t.Errorf("cash %s: TotalSpent = %s overspends", cash, plan.TotalSpent)
		}
		if plan.Remaining.IsNegative() {
			t.Errorf("cash %s: Remaining = %s, want >= 0", cash, plan.Remaining)
		}
		if !plan.TotalSpent.Add(plan.Remaining).Equal(dec(cash)) {
			t.Errorf("cash %s: spent %s + remaining %s does not add up",
				cash, plan.TotalSpent, plan.Remaining)
		}
	}
}

func TestSimulateSpendExhaustsAffordableCash(t *testing.T) {
	// as long as the cheapest core holding is affordable, the loop keeps
	// buying: what remains must be below the minimum price.
	c := vcnXawCore(t)
	plan := SimulateSpend(c, dec("500"))
	if plan.Remaining.GreaterThanOrEqual(dec("10")) {
		t.Errorf("Remaining = %s, want < 10 (the cheapest price)", plan.Remaining)
	}
}

func TestSimulateSpendLeavesCoreUntouched(t *testing.T) {
	c := vcnXawCore(t)
	before := coreRow(t, c, "VCN").Quantity
	SimulateSpend(c, dec("100"))
	if after := coreRow(t, c, "VCN").Quantity; after != before {
		t.Errorf("VCN Quantity = %d after simulation, want %d", after, before)
	}
}

func TestSimulateSpendDegenerate(t *testing.T) {
	c := vcnXawCore(t)
	// zero and negative cash are no-ops; 5 is positive but below every price.
	for _, cash := range []decimal.Decimal{decimal.Zero, dec("-10"), dec("5")} {
		plan := SimulateSpend(c, cash)
		if len(plan.Purchases) != 0 || !plan.TotalSpent.IsZero() {
			t.Errorf("cash %s: plan = %+v, want empty", cash, plan)
		}
		if !plan.Remaining.Equal(cash) {
			t.Errorf("cash %s: Remaining = %s, want the full amount back", cash, plan.Remaining)
		}
	}
}

func TestSimulateSpendEmptyCore(t *testing.T) {
	h := mustHoldings(t, holding("AAPL", 2, "150", "USD"))
	m := mustModel(t, alloc("VCN", "1"))
	v, err := Valuate(h, dec("1.35"))
	if err != nil {
		t.Fatalf("Valuate() error = %v", err)
	}
	c, err := Split(v, m)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	plan := SimulateSpend(c, dec("1000"))
	if len(plan.Purchases) != 0 || !plan.Remaining.Equal(dec("1000")) {
		t.Errorf("plan = %+v, want nothing bought", plan)
	}
}
