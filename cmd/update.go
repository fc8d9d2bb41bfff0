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

type updateCmd struct{}

func (c *updateCmd) Name() string     { return "update" }
func (c *updateCmd) Synopsis() string { return "Refresh all stored market prices." }
func (c *updateCmd) Usage() string {
	return `update:
	Fetch current prices for every cryptocurrency holding and every
	precious metal, then save the ledger. A holding whose fetch fails
	keeps its previous price.
`
}

func (c *updateCmd) SetFlags(f *flag.FlagSet) {}

func (c *updateCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
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

	now := time.Now()
	coins, cerrs := ledger.UpdateCryptoPrices(newCryptoClient(), now)
	metals, merrs := ledger.UpdateMetalPrices(newMetalClient(config), now)

	if cerrs != nil {
		log.Println(cerrs)
	}
	if merrs != nil {
		if errors.Is(merrs, goldapi.ErrUnconfigured) {
			fmt.Println("No metals API key configured. Set METALS_API_KEY or run 'tly config -metals-api-key <key>'.")
		} else {
			log.Println(merrs)
		}
	}

	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✓ Updated %d cryptocurrency price(s) and %d metal price(s).\n", coins, metals)
	return subcommands.ExitSuccess
}
