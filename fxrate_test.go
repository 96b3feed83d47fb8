package rebalance

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// exchangeratesapi.io quotes everything against EUR.
const ratesBody = `{"success":true,"base":"EUR","rates":{"CAD":1.50,"USD":1.20}}`

func newRateClient(t *testing.T, srvURL string) *ExchangeRatesClient {
	t.Helper()
	return &ExchangeRatesClient{
		apiKey:     "test-key",
		backupPath: filepath.Join(t.TempDir(), "exchange_rate.txt"),
		url:        srvURL,
		client:     uncached(),
		log:        zerolog.Nop(),
	}
}

func TestExchangeRatesClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_key") != "test-key" {
			http.Error(w, "missing key", http.StatusUnauthorized)
			return
		}
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	c := newRateClient(t, srv.URL)
	rate, err := c.Rate()
	if err != nil {
		t.Fatalf("Rate() error = %v", err)
	}
	// cross rate CAD/USD = 1.50 / 1.20
	if !rate.Equal(dec("1.25")) {
		t.Errorf("Rate() = %s, want 1.25", rate)
	}

	// a successful fetch caches the rate for later fallback.
	content, err := os.ReadFile(c.backupPath)
	if err != nil {
		t.Fatalf("backup file not written: %v", err)
	}
	if string(content) != "1.25" {
		t.Errorf("backup content = %q, want 1.25", content)
	}
}

func TestExchangeRatesClientFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newRateClient(t, srv.URL)
	if err := os.WriteFile(c.backupPath, []byte("1.3720"), 0644); err != nil {
		t.Fatal(err)
	}
	rate, err := c.Rate()
	if err != nil {
		t.Fatalf("Rate() error = %v, want the cached fallback", err)
	}
	if !rate.Equal(dec("1.3720")) {
		t.Errorf("Rate() = %s, want the cached 1.3720", rate)
	}
}

func TestExchangeRatesClientNoFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	// no backup file: both paths fail and the error says so.
	c := newRateClient(t, srv.URL)
	if _, err := c.Rate(); err == nil {
		t.Fatal("Rate() error = nil, want fetch and cache failures")
	}
}

func TestExchangeRatesClientZeroUSD(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"CAD":1.50,"USD":0}}`))
	}))
	defer srv.Close()

	c := newRateClient(t, srv.URL)
	if _, err := c.Rate(); err == nil {
		t.Fatal("Rate() error = nil, want a zero-USD rejection")
	}
}
