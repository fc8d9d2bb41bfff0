package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/subcommands"
)

type cryptoUpdateCmd struct{}

func (c *cryptoUpdateCmd) Name() string     { return "update" }
func (c *cryptoUpdateCmd) Synopsis() string { return "Refresh cryptocurrency prices." }
func (c *cryptoUpdateCmd) Usage() string {
	return `crypto update:
	Fetch the current price of every cryptocurrency holding. A holding
	whose fetch fails keeps its previous price.
`
}

func (c *cryptoUpdateCmd) SetFlags(f *flag.FlagSet) {}

func (c *cryptoUpdateCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	updated, errs := ledger.UpdateCryptoPrices(newCryptoClient(), time.Now())
	if errs != nil {
		log.Println(errs)
	}

	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✓ Updated %d of %d cryptocurrency price(s).\n", updated, len(ledger.CryptoHoldings()))
	return subcommands.ExitSuccess
}
