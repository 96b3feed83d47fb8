package rebalance

import (
	"errors"
	"fmt"
	"io"

	"github.com/mpelletier/rebalance/date"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Quote is one end-of-day price observation.
type Quote struct {
	Price decimal.Decimal
	AsOf  date.Date
}

// QuoteProvider fetches the latest closing price for a listed security.
type QuoteProvider interface {
	Latest(ticker, exchange string) (Quote, error)
}

// RateProvider fetches the foreign-to-home exchange rate. Implementations
// own their fallback policy (e.g. a cached last-known rate).
type RateProvider interface {
	Rate() (decimal.Decimal, error)
}

// Config carries the collaborators a Portfolio needs. All of it is
// constructor-time injection; the package keeps no ambient state.
type Config struct {
	Quotes QuoteProvider  // optional; RefreshPrices fails without it
	FX     RateProvider   // optional; RefreshRate fails without it
	Logger zerolog.Logger // zero value logs are discarded
}

// Portfolio owns the authoritative holdings table, the target model and the
// exchange rate, and recomputes every derived view from scratch on demand.
type Portfolio struct {
	holdings *Holdings
	model    *Model
	fxRate   decimal.Decimal

	quotes QuoteProvider
	fx     RateProvider
	log    zerolog.Logger
}

// New assembles a portfolio from an already validated holdings table and
// model. The exchange rate starts at 1 until RefreshRate is called.
func New(holdings *Holdings, model *Model, cfg Config) (*Portfolio, error) {
	if holdings == nil {
		return nil, errors.New("holdings table is required")
	}
	if model == nil {
		return nil, errors.New("model is required")
	}
	return &Portfolio{
		holdings: holdings,
		model:    model,
		fxRate:   decimal.NewFromInt(1),
		quotes:   cfg.Quotes,
		fx:       cfg.FX,
		log:      cfg.Logger,
	}, nil
}

// FXRate returns the exchange rate currently applied to foreign rows.
func (p *Portfolio) FXRate() decimal.Decimal { return p.fxRate }

// Model returns the target model.
func (p *Portfolio) Model() *Model { return p.model }

// RefreshRate fetches the exchange rate from the provider. On failure the
// previous rate is kept and the error is returned to the caller.
func (p *Portfolio) RefreshRate() error {
	if p.fx == nil {
		return errors.New("no exchange rate provider configured")
	}
	rate, err := p.fx.Rate()
	if err != nil {
		return fmt.Errorf("exchange rate refresh failed: %w", err)
	}
	p.log.Info().Str("rate", rate.String()).Msg("exchange rate refreshed")
	p.fxRate = rate
	return nil
}

// RefreshPrices fetches the latest closing price for every holding. Success
// is per row: a quote is applied only when its observation date is strictly
// newer than the stored one, failed rows keep their previous price and date,
// and all failures are joined into the returned error.
func (p *Portfolio) RefreshPrices() error {
	if p.quotes == nil {
		return errors.New("no quote provider configured")
	}
	var errs error
	for _, row := range p.holdings.Rows() {
		quote, err := p.quotes.Latest(row.Ticker, row.Exchange)
		if err != nil {
			p.log.Warn().Err(err).Str("ticker", row.Ticker).Msg("price fetch failed, keeping previous price")
			errs = errors.Join(errs, fmt.Errorf("quote %s: %w", row.Ticker, err))
			continue
		}
		if !quote.AsOf.After(row.UpdateDate) {
			p.log.Debug().Str("ticker", row.Ticker).Str("as_of", quote.AsOf.String()).Msg("quote not newer than stored price, skipping")
			continue
		}
		if err := p.holdings.setPrice(row.Ticker, quote.Price, quote.AsOf); err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		p.log.Info().Str("ticker", row.Ticker).Str("price", quote.Price.String()).Str("as_of", quote.AsOf.String()).Msg("price updated")
	}
	return errs
}

// UpdateQuantity sets the owned quantity of ticker. Unknown tickers and
// negative quantities are validation errors and leave the table unchanged.
func (p *Portfolio) UpdateQuantity(ticker string, quantity int64) error {
	if err := p.holdings.SetQuantity(ticker, quantity); err != nil {
		return err
	}
	p.log.Info().Str("ticker", ticker).Int64("quantity", quantity).Msg("quantity updated")
	return nil
}

// Holdings returns a valuated copy of the holdings table.
func (p *Portfolio) Holdings() (*Holdings, error) {
	return Valuate(p.holdings, p.fxRate)
}

// Save writes the authoritative holdings table to w as canonical CSV.
// Nothing in this package writes the table back automatically.
func (p *Portfolio) Save(w io.Writer) error { return EncodeHoldings(w, p.holdings) }

// Core valuates, splits and rebalances, always from the current tables.
func (p *Portfolio) Core() (*CorePortfolio, error) {
	valuated, err := Valuate(p.holdings, p.fxRate)
	if err != nil {
		return nil, err
	}
	core, err := Split(valuated, p.model)
	if err != nil {
		return nil, err
	}
	core.Rebalance()
	return core, nil
}

// NoSellPlan computes the buy-only rebalancing plan.
func (p *Portfolio) NoSellPlan() (*NoSellPlan, error) {
	core, err := p.Core()
	if err != nil {
		return nil, err
	}
	return core.NoSell(), nil
}

// Spend simulates deploying cash across the core holdings. The simulation
// works on a detached copy; the portfolio itself is unchanged.
func (p *Portfolio) Spend(cash decimal.Decimal) (*PurchasePlan, error) {
	core, err := p.Core()
	if err != nil {
		return nil, err
	}
	return SimulateSpend(core, cash), nil
}
