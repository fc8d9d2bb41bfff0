package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/subcommands"
	"github.com/tally-sh/tally/goldapi"
)

type assetsUpdateCmd struct{}

func (c *assetsUpdateCmd) Name() string     { return "update" }
func (c *assetsUpdateCmd) Synopsis() string { return "Refresh precious metal spot prices." }
func (c *assetsUpdateCmd) Usage() string {
	return `assets update:
	Fetch the current spot price of every precious metal holding.
	Other hard assets keep their user-entered value.
`
}

func (c *assetsUpdateCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetsUpdateCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	updated, errs := ledger.UpdateMetalPrices(newMetalClient(config), time.Now())
	if errs != nil {
		if errors.Is(errs, goldapi.ErrUnconfigured) {
			fmt.Println("No metals API key configured. Set METALS_API_KEY or run 'tly config -metals-api-key <key>'.")
		} else {
			log.Println(errs)
		}
	}

	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✓ Updated %d of %d metal price(s).\n", updated, len(ledger.PreciousMetals()))
	return subcommands.ExitSuccess
}
