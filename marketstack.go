package rebalance

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mpelletier/rebalance/date"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const marketstackURL = "http://api.marketstack.com/v1/tickers"

// MarketstackClient fetches end-of-day closing prices from marketstack.com.
// Responses are disk-cached with daily expiry, so re-running a report does
// not burn through the API quota.
type MarketstackClient struct {
	apiKey string
	url    string
	client *http.Client
	log    zerolog.Logger
}

// NewMarketstackClient creates a quote client. The API key is required by
// the endpoint; an empty key fails on the first fetch, not here.
func NewMarketstackClient(apiKey string, log zerolog.Logger) *MarketstackClient {
	return &MarketstackClient{apiKey: apiKey, url: marketstackURL, client: daily(), log: log}
}

// marketstackSymbol builds the provider's symbol for a ticker and its
// exchange MIC. US venues (NYSE, NYSE Arca) use the bare ticker; everything
// else is suffixed with the exchange code.
func marketstackSymbol(ticker, exchange string) string {
	ticker = strings.ToUpper(ticker)
	exchange = strings.ToUpper(exchange)
	switch exchange {
	case "ARCX", "XNYS":
		return ticker
	default:
		return ticker + "." + exchange
	}
}

// Latest returns the most recent end-of-day quote for ticker.
func (c *MarketstackClient) Latest(ticker, exchange string) (Quote, error) {
	symbol := marketstackSymbol(ticker, exchange)
	addr := fmt.Sprintf("%s/%s/eod/latest?access_key=%s", c.url, url.PathEscape(symbol), url.QueryEscape(c.apiKey))

	c.log.Debug().Str("symbol", symbol).Msg("fetching end-of-day quote")
	var jobj any
	if err := jwget(c.client, addr, &jobj); err != nil {
		return Quote{}, fmt.Errorf("cannot fetch quote for %q: %w", symbol, err)
	}

	close, err := jsonFloat(jobj, "$.close")
	if err != nil {
		return Quote{}, fmt.Errorf("quote for %q: %w", symbol, err)
	}
	day, err := jsonString(jobj, "$.date")
	if err != nil {
		return Quote{}, fmt.Errorf("quote for %q: %w", symbol, err)
	}
	// the date comes back as a full timestamp, e.g. "2024-05-31T00:00:00+0000"
	if len(day) > len(date.DateFormat) {
		day = day[:len(date.DateFormat)]
	}
	asOf, err := date.Parse(day)
	if err != nil {
		return Quote{}, fmt.Errorf("quote for %q: %w", symbol, err)
	}
	return Quote{Price: decimal.NewFromFloat(close), AsOf: asOf}, nil
}

// jsonFloat extracts a float value at path from a decoded JSON document.
func jsonFloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("response has no %q: %w", path, err)
	}
	// jsonpath sometimes yields a single-element list instead of a scalar
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("response %q is %v, not a number", path, jval)
	}
	return val, nil
}

// jsonString extracts a string value at path from a decoded JSON document.
func jsonString(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("response has no %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("response %q is %v, not a string", path, jval)
	}
	return val, nil
}
