package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mpelletier/rebalance/renderer"
)

// rebalanceCmd holds the flags for the 'rebalance' subcommand.
type rebalanceCmd struct {
	update bool
}

func (*rebalanceCmd) Name() string     { return "rebalance" }
func (*rebalanceCmd) Synopsis() string { return "show actual vs target allocation with signed trades" }
func (*rebalanceCmd) Usage() string {
	return `rebal rebalance [-u]

  Compares each core holding's weight with its model target at the current
  core value. Negative trade quantities are implied sells; see 'rebal nosell'
  for the buy-only plan.
`
}

func (c *rebalanceCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", false, "refresh prices before calculating the report")
}

func (c *rebalanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	core, err := p.Core()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing rebalance: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RebalanceMarkdown(core))
	return subcommands.ExitSuccess
}
