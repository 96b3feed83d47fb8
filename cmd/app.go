// Package cmd implements the CLI application to rebalance a portfolio.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mpelletier/rebalance"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package calls Register() to install the verbs, and Execute() runs
// the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&holdingsCmd{}, "portfolio")
	c.Register(&updateCmd{}, "portfolio")
	c.Register(&setCmd{}, "portfolio")

	c.Register(&rebalanceCmd{}, "rebalancing")
	c.Register(&noSellCmd{}, "rebalancing")
	c.Register(&spendCmd{}, "rebalancing")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the shared flags.

var holdingsFile = flag.String("holdings-file", "data/portfolio.csv", "Path to the holdings CSV file")
var modelFile = flag.String("model-file", "data/model.csv", "Path to the target model CSV file")
var fxBackupFile = flag.String("fx-backup-file", "data/exchange_rate.txt", "Path to the cached exchange rate file")
var logLevel = flag.String("log-level", "warn", "Log level: debug, info, warn or error")
var logFile = flag.String("log-file", "", "Append logs to this file instead of the console")

const (
	marketstackKeyEnv = "PRICE_API_KEY"
	exchangeKeyEnv    = "EXCHANGE_API_KEY"
)

var marketstackKeyFlag = flag.String("marketstack-api-key", "", "marketstack.com API key.\n If missing it is read from the environment variable "+marketstackKeyEnv+".")
var exchangeKeyFlag = flag.String("exchange-api-key", "", "exchangeratesapi.io API key.\n If missing it is read from the environment variable "+exchangeKeyEnv+".")

func marketstackKey() string {
	if *marketstackKeyFlag == "" {
		*marketstackKeyFlag = os.Getenv(marketstackKeyEnv)
	}
	return *marketstackKeyFlag
}

func exchangeKey() string {
	if *exchangeKeyFlag == "" {
		*exchangeKeyFlag = os.Getenv(exchangeKeyEnv)
	}
	return *exchangeKeyFlag
}

// appLogger builds the logger once from the shared flags.
func appLogger() zerolog.Logger {
	log, err := rebalance.NewLogger(rebalance.LogConfig{Level: *logLevel, File: *logFile})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, logging disabled\n", err)
		return zerolog.Nop()
	}
	return log
}

// loadPortfolio reads the holdings and model files and assembles the
// portfolio with its quote collaborators. The exchange rate is refreshed
// here (the client falls back to its cached rate); when even the fallback
// fails the session continues at rate 1 with a warning.
func loadPortfolio(log zerolog.Logger) (*rebalance.Portfolio, error) {
	hf, err := os.Open(*holdingsFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open holdings file: %w", err)
	}
	defer hf.Close()
	holdings, err := rebalance.DecodeHoldings(hf)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", *holdingsFile, err)
	}

	mf, err := os.Open(*modelFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open model file: %w", err)
	}
	defer mf.Close()
	model, err := rebalance.DecodeModel(mf)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", *modelFile, err)
	}

	p, err := rebalance.New(holdings, model, rebalance.Config{
		Quotes: rebalance.NewMarketstackClient(marketstackKey(), log),
		FX:     rebalance.NewExchangeRatesClient(exchangeKey(), *fxBackupFile, log),
		Logger: log,
	})
	if err != nil {
		return nil, err
	}

	if err := p.RefreshRate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, continuing at rate 1\n", err)
	}
	return p, nil
}

// saveHoldings writes the authoritative holdings table back to its file.
// This is the only place the file is ever rewritten.
func saveHoldings(p *rebalance.Portfolio) error {
	f, err := os.Create(*holdingsFile)
	if err != nil {
		return fmt.Errorf("cannot write holdings file: %w", err)
	}
	defer f.Close()
	if err := p.Save(f); err != nil {
		return fmt.Errorf("cannot write %q: %w", *holdingsFile, err)
	}
	return nil
}
