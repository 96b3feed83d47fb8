package rebalance

import (
	"errors"
	"strings"
	"testing"
)

const holdingsCSV = `ticker,exchange,quantity,closing_price,currency,update_date
VCN,XTSE,10,10.25,CAD,2025-06-02
AAPL,XNAS,2,150,USD,2025-05-30
`

func TestDecodeHoldings(t *testing.T) {
	h, err := DecodeHoldings(strings.NewReader(holdingsCSV))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	vcn, ok := h.Get("VCN")
	if !ok {
		t.Fatal("Get(VCN) not found")
	}
	if vcn.Exchange != "XTSE" || vcn.Quantity != 10 || vcn.Currency != "CAD" {
		t.Errorf("VCN = %+v, want XTSE/10/CAD", vcn)
	}
	if !vcn.ClosingPrice.Equal(dec("10.25")) {
		t.Errorf("VCN ClosingPrice = %s, want 10.25", vcn.ClosingPrice)
	}
	if got := vcn.UpdateDate.String(); got != "2025-06-02" {
		t.Errorf("VCN UpdateDate = %s, want 2025-06-02", got)
	}
}

func TestDecodeHoldingsColumnOrder(t *testing.T) {
	// columns are addressed by name: order is free and extras are ignored.
	in := `note,quantity,ticker,closing_price,update_date,currency,exchange
hand edited,10,VCN,10.25,2025-06-02,CAD,XTSE
`
	h, err := DecodeHoldings(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	if vcn, _ := h.Get("VCN"); vcn.Quantity != 10 || vcn.Exchange != "XTSE" {
		t.Errorf("VCN = %+v, want quantity 10 on XTSE", vcn)
	}
}

func TestDecodeHoldingsErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string // substring of the error
	}{
		{"empty", "", "empty file"},
		{"missing column", "ticker,quantity\nVCN,10\n", `missing required column`},
		{"bad quantity", strings.Replace(holdingsCSV, "10,10.25", "ten,10.25", 1), "invalid quantity"},
		{"bad price", strings.Replace(holdingsCSV, "10.25", "n/a", 1), "invalid closing_price"},
		{"bad date", strings.Replace(holdingsCSV, "2025-06-02", "June 2nd", 1), "invalid date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeHoldings(strings.NewReader(tt.in))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("DecodeHoldings() error = %v, want it to contain %q", err, tt.want)
			}
		})
	}

	dup := holdingsCSV + "VCN,XTSE,1,9,CAD,2025-06-02\n"
	if _, err := DecodeHoldings(strings.NewReader(dup)); !errors.Is(err, ErrDuplicateTicker) {
		t.Errorf("DecodeHoldings(dup) error = %v, want ErrDuplicateTicker", err)
	}
}

func TestEncodeHoldings(t *testing.T) {
	h, err := DecodeHoldings(strings.NewReader(holdingsCSV))
	if err != nil {
		t.Fatalf("DecodeHoldings() error = %v", err)
	}
	var buf strings.Builder
	if err := EncodeHoldings(&buf, h); err != nil {
		t.Fatalf("EncodeHoldings() error = %v", err)
	}
	// canonical form: fixed column order, rows sorted by ticker.
	want := `ticker,exchange,quantity,closing_price,currency,update_date
AAPL,XNAS,2,150,USD,2025-05-30
VCN,XTSE,10,10.25,CAD,2025-06-02
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeHoldings() =\n%s\nwant\n%s", got, want)
	}
}

func TestDecodeModel(t *testing.T) {
	in := `ticker,target_allocation
VCN,0.6
XAW,0.4
`
	m, err := DecodeModel(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeModel() error = %v", err)
	}
	if target, _ := m.Target("VCN"); !target.Equal(dec("0.6")) {
		t.Errorf("Target(VCN) = %s, want 0.6", target)
	}

	bad := strings.Replace(in, "0.4", "0.3", 1)
	if _, err := DecodeModel(strings.NewReader(bad)); !errors.Is(err, ErrBadAllocation) {
		t.Errorf("DecodeModel(sum 0.9) error = %v, want ErrBadAllocation", err)
	}
}
