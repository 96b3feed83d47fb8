package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mpelletier/rebalance/renderer"
)

// holdingsCmd holds the flags for the 'holdings' subcommand.
type holdingsCmd struct {
	update bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the valuated holdings table" }
func (*holdingsCmd) Usage() string {
	return `rebal holdings [-u]

  Displays every position with its closing price and value, largest first,
  and the total portfolio value in the home currency.
`
}

func (c *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", false, "refresh prices before displaying (does not write the file)")
}

func (c *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := appLogger()
	p, err := loadPortfolio(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.update {
		if err := p.RefreshPrices(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: some prices were not refreshed: %v\n", err)
		}
	}

	holdings, err := p.Holdings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error valuating holdings: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.HoldingsMarkdown(holdings))
	return subcommands.ExitSuccess
}
