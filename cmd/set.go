package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// setCmd holds the flags for the 'set' subcommand.
type setCmd struct {
	ticker   string
	quantity int64
	write    bool
}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set the owned quantity of a holding" }
func (*setCmd) Usage() string {
	return `rebal set -t <ticker> -q <quantity> [-w]

  Replaces the owned quantity of a holding, e.g. after a trade settles.
  The ticker must already exist in the holdings file. Use -w to persist.
`
}

func (c *setCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "ticker to update (required)")
	f.Int64Var(&c.quantity, "q", -1, "new total quantity (required, >= 0)")
	f.BoolVar(&c.write, "w", false, "write the holdings back to the holdings file")
}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" || c.quantity < 0 {
		fmt.Fprintln(os.Stderr, "both -t and a non-negative -q are required")
		return subcommands.ExitUsageError
	}

	log := appLogger()
	p, err := loadPortfolio(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := p.UpdateQuantity(c.ticker, c.quantity); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("%s quantity set to %d.\n", c.ticker, c.quantity)

	if c.write {
		if err := saveHoldings(p); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Saved %s.\n", *holdingsFile)
	}
	return subcommands.ExitSuccess
}
