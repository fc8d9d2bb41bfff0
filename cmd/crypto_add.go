package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/subcommands"
	"github.com/tally-sh/tally"
	"github.com/tally-sh/tally/coingecko"
)

type cryptoAddCmd struct {
	symbol   string
	quantity float64
	cost     float64
}

func (c *cryptoAddCmd) Name() string     { return "add" }
func (c *cryptoAddCmd) Synopsis() string { return "Add a cryptocurrency holding." }
func (c *cryptoAddCmd) Usage() string {
	return `crypto add -s <symbol> -q <quantity> [-cost <avg cost>]:
	Resolve the symbol or name against the market data provider, fetch
	the current price, and record the holding.
`
}

func (c *cryptoAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "symbol or name of the coin, e.g. BTC or bitcoin")
	f.Float64Var(&c.quantity, "q", 0, "quantity held")
	f.Float64Var(&c.cost, "cost", 0, "average cost per unit, 0 when unknown")
}

func (c *cryptoAddCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Println("Missing -s <symbol>.")
		return subcommands.ExitUsageError
	}
	if c.quantity < 0 || c.cost < 0 {
		fmt.Println("Quantity and cost must not be negative.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	gecko := newCryptoClient()
	holding, err := ledger.AddCrypto(gecko, gecko, c.symbol,
		tally.Q(c.quantity), tally.M(c.cost, ledger.Currency()), time.Now())
	if errors.Is(err, coingecko.ErrNotFound) {
		fmt.Printf("Could not find a cryptocurrency matching %q.\n", c.symbol)
		return subcommands.ExitFailure
	}
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✓ Added %s %s (%s).\n", holding.Quantity, holding.Name, holding.ID)
	if holding.CurrentPrice.IsPositive() {
		fmt.Printf("  Current price: %s, value: %s\n", holding.CurrentPrice, holding.Value())
	} else {
		fmt.Println("  Current price unavailable; run 'tly crypto update' to retry.")
	}
	return subcommands.ExitSuccess
}
