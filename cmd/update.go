package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// updateCmd holds the flags for the 'update' subcommand.
type updateCmd struct {
	write bool
}

func (*updateCmd) Name() string { return "update" }
func (*updateCmd) Synopsis() string {
	return "refresh closing prices and the exchange rate"
}
func (*updateCmd) Usage() string {
	return `rebal update [-w]

  Fetches the latest closing price for every holding and the current USD/CAD
  rate. A quote is applied only when it is newer than the stored one; rows
  whose fetch fails keep their previous price. Use -w to write the refreshed
  holdings back to the file.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.write, "w", false, "write the refreshed holdings back to the holdings file")
}

func (c *updateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
	}

	log := appLogger()
	p, err := loadPortfolio(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := p.RefreshPrices(); err != nil {
		// partial failure: refreshed rows are still good, report the rest
		fmt.Fprintf(os.Stderr, "Warning: some prices were not refreshed: %v\n", err)
	}

	holdings, err := p.Holdings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Updated as of %s, exchange rate %s.\n", holdings.LastUpdated(), p.FXRate())

	if c.write {
		if err := saveHoldings(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved %s.\n", *holdingsFile)
	}
	return subcommands.ExitSuccess
}
