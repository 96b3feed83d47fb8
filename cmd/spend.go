package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mpelletier/rebalance/renderer"
	"github.com/shopspring/decimal"
)

// spendCmd holds the flags for the 'spend' subcommand.
type spendCmd struct {
	amount string
}

func (*spendCmd) Name() string     { return "spend" }
func (*spendCmd) Synopsis() string { return "simulate deploying cash across the core holdings" }
func (*spendCmd) Usage() string {
	return `rebal spend -amount <cash>

  Greedily buys one share at a time of the most underweight affordable
  holding until nothing fits in the remaining cash. A simulation only: the
  holdings file is never modified.
`
}

func (c *spendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "amount", "", "cash amount to deploy (required)")
}

func (c *spendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cash, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid -amount %q: must be a number\n", c.amount)
		return subcommands.ExitUsageError
	}

	log := appLogger()
	p, err := loadPortfolio(log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	plan, err := p.Spend(cash)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error simulating spend: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SpendMarkdown(plan))
	return subcommands.ExitSuccess
}
