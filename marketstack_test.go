package rebalance

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

func TestMarketstackSymbol(t *testing.T) {
	tests := []struct {
		ticker, exchange, want string
	}{
		{"VCN", "XTSE", "VCN.XTSE"},
		{"vcn", "xtse", "VCN.XTSE"},
		{"SPY", "ARCX", "SPY"},
		{"IBM", "XNYS", "IBM"},
		{"AAPL", "XNAS", "AAPL.XNAS"},
	}
	for _, tt := range tests {
		if got := marketstackSymbol(tt.ticker, tt.exchange); got != tt.want {
			t.Errorf("marketstackSymbol(%q, %q) = %q, want %q", tt.ticker, tt.exchange, got, tt.want)
		}
	}
}

func TestMarketstackLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/VCN.XTSE/eod/latest" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, `{"close":42.97,"symbol":"VCN.XTSE","date":"2025-06-06T00:00:00+0000"}`)
	}))
	defer srv.Close()

	c := &MarketstackClient{apiKey: "test-key", url: srv.URL, client: uncached(), log: zerolog.Nop()}
	quote, err := c.Latest("vcn", "xtse")
	if err != nil {
		t.Fatalf("Latest() error = %v", err)
	}
	if !quote.Price.Equal(dec("42.97")) {
		t.Errorf("Price = %s, want 42.97", quote.Price)
	}
	if got := quote.AsOf.String(); got != "2025-06-06" {
		t.Errorf("AsOf = %s, want 2025-06-06", got)
	}
}

func TestMarketstackLatestBadResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"error":{"code":"invalid_access_key"}}`)
	}))
	defer srv.Close()

	c := &MarketstackClient{apiKey: "bad", url: srv.URL, client: uncached(), log: zerolog.Nop()}
	if _, err := c.Latest("VCN", "XTSE"); err == nil {
		t.Fatal("Latest() error = nil, want a missing close error")
	}
}
