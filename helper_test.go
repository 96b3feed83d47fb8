package rebalance

import (
	"testing"
	"time"

	"github.com/mpelletier/rebalance/date"
	"github.com/shopspring/decimal"
)

// shared test helpers.

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err.Error())
	}
	return d
}

var one = decimal.NewFromInt(1)

func holding(ticker string, quantity int64, price, currency string) Holding {
	return Holding{
		Ticker:       ticker,
		Exchange:     "XTSE",
		Quantity:     quantity,
		ClosingPrice: dec(price),
		Currency:     currency,
		UpdateDate:   date.New(2025, time.June, 2),
	}
}

func alloc(ticker, target string) ModelAllocation {
	return ModelAllocation{Ticker: ticker, TargetAllocation: dec(target)}
}

func mustHoldings(t *testing.T, rows ...Holding) *Holdings {
	t.Helper()
	h, err := NewHoldings(rows...)
	if err != nil {
		t.Fatalf("NewHoldings() error = %v", err)
	}
	return h
}

func mustModel(t *testing.T, rows ...ModelAllocation) *Model {
	t.Helper()
	m, err := NewModel(rows...)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

// vcnXawCore builds the reference scenario: model {VCN: 0.6, XAW: 0.4},
// VCN qty=10 price=10 (value 100), XAW qty=5 price=20 (value 100), plus a
// satellite AAPL position outside the model.
func vcnXawCore(t *testing.T) *CorePortfolio {
	t.Helper()
	h := mustHoldings(t,
		holding("VCN", 10, "10", "CAD"),
		holding("XAW", 5, "20", "CAD"),
		holding("AAPL", 2, "150", "USD"),
	)
	m := mustModel(t, alloc("VCN", "0.6"), alloc("XAW", "0.4"))
	valuated, err := Valuate(h, one)
	if err != nil {
		t.Fatalf("Valuate() error = %v", err)
	}
	core, err := Split(valuated, m)
	if err != nil {
		t.Fatalf("Split() error = %v", err)
	}
	return core
}

func coreRow(t *testing.T, c *CorePortfolio, ticker string) CoreHolding {
	t.Helper()
	row, ok := c.Get(ticker)
	if !ok {
		t.Fatalf("core has no row %q", ticker)
	}
	return row
}
