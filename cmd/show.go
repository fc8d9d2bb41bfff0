package cmd

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/tally-sh/tally"
	"github.com/tally-sh/tally/renderer"
)

type showCmd struct {
	detailed bool
}

func (c *showCmd) Name() string     { return "show" }
func (c *showCmd) Synopsis() string { return "Display the portfolio valuation." }
func (c *showCmd) Usage() string {
	return `show [-d]:
	Value every holding at its last known price, fetch live brokerage
	positions, and print the total with the allocation breakdown.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.detailed, "d", false, "also print the per-holding tables")
}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	config, err := LoadConfig()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	// Brokerage positions are transient. A failed fetch only means the
	// equities line reads zero for this run.
	snapshot, _ := fetchEquities(config)

	valuation := tally.NewValuation(ledger, snapshot)
	printMarkdown(renderer.SummaryMarkdown(valuation))

	if c.detailed {
		printMarkdown(renderer.CashMarkdown(ledger.Cash()))
		if snapshot != nil {
			printMarkdown(renderer.EquitiesMarkdown(snapshot))
		}
		printMarkdown(renderer.CryptoMarkdown(ledger.CryptoHoldings(), config.Preferences.ShowCostBasis))
		printMarkdown(renderer.HardAssetsMarkdown(ledger.HardAssets(), config.Preferences.ShowCostBasis))
	}
	return subcommands.ExitSuccess
}
