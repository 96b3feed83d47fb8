package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/mpelletier/rebalance/renderer"
)

// noSellCmd holds the flags for the 'nosell' subcommand.
type noSellCmd struct {
	update bool
}

func (*noSellCmd) Name() string     { return "nosell" }
func (*noSellCmd) Synopsis() string { return "show the buy-only rebalancing plan" }
func (*noSellCmd) Usage() string {
	return `rebal nosell [-u]

  Computes the rebalancing plan that reaches the model weights with
  purchases only, anchored on the holding that needs the least adjustment.
`
}

func (c *noSellCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.update, "u", false, "refresh prices before calculating the report")
}

func (c *noSellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	plan, err := p.NoSellPlan()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing no-sell plan: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.NoSellMarkdown(plan))
	return subcommands.ExitSuccess
}
