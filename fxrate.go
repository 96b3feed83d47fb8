package rebalance

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const exchangeRatesURL = "http://api.exchangeratesapi.io/v1/latest"

// ExchangeRatesClient fetches the USD to CAD rate from exchangeratesapi.io.
//
// The endpoint quotes both currencies against EUR, so the cross rate is
// CAD/USD. Every successful fetch rewrites the backup file; when the fetch
// fails the last cached rate is served instead, so a flaky connection never
// blocks a rebalancing session.
type ExchangeRatesClient struct {
	apiKey     string
	backupPath string
	url        string
	client     *http.Client
	log        zerolog.Logger
}

// NewExchangeRatesClient creates a rate client caching its last good rate in
// backupPath.
func NewExchangeRatesClient(apiKey, backupPath string, log zerolog.Logger) *ExchangeRatesClient {
	return &ExchangeRatesClient{apiKey: apiKey, backupPath: backupPath, url: exchangeRatesURL, client: uncached(), log: log}
}

// Rate returns the current USD to CAD exchange rate, falling back to the
// backup file when the fetch fails.
func (c *ExchangeRatesClient) Rate() (decimal.Decimal, error) {
	rate, err := c.fetch()
	if err == nil {
		if werr := os.WriteFile(c.backupPath, []byte(rate.String()), 0644); werr != nil {
			c.log.Warn().Err(werr).Str("path", c.backupPath).Msg("cannot cache exchange rate")
		}
		return rate, nil
	}

	c.log.Warn().Err(err).Msg("exchange rate fetch failed, using cached rate")
	cached, cerr := c.cached()
	if cerr != nil {
		return decimal.Zero, errors.Join(err, cerr)
	}
	return cached, nil
}

func (c *ExchangeRatesClient) fetch() (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s?access_key=%s", c.url, url.QueryEscape(c.apiKey))
	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return decimal.Zero, fmt.Errorf("cannot fetch exchange rates: %w", err)
	}
	cad, err := jsonFloat(jobj, "$.rates.CAD")
	if err != nil {
		return decimal.Zero, err
	}
	usd, err := jsonFloat(jobj, "$.rates.USD")
	if err != nil {
		return decimal.Zero, err
	}
	if usd == 0 {
		return decimal.Zero, errors.New("exchange rates response quotes USD at zero")
	}
	return decimal.NewFromFloat(cad).Div(decimal.NewFromFloat(usd)), nil
}

func (c *ExchangeRatesClient) cached() (decimal.Decimal, error) {
	content, err := os.ReadFile(c.backupPath)
	if err != nil {
		return decimal.Zero, fmt.Errorf("no cached exchange rate: %w", err)
	}
	rate, err := decimal.NewFromString(strings.TrimSpace(string(content)))
	if err != nil {
		return decimal.Zero, fmt.Errorf("cached exchange rate is corrupt: %w", err)
	}
	return rate, nil
}
