package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/tally-sh/tally"
)

type cryptoAdjustCmd struct {
	symbol string
	set    string
	add    string
	sub    string
}

func (c *cryptoAdjustCmd) Name() string     { return "adjust" }
func (c *cryptoAdjustCmd) Synopsis() string { return "Adjust the quantity of a holding." }
func (c *cryptoAdjustCmd) Usage() string {
	return `crypto adjust -s <symbol> (-set <q> | -add <q> | -sub <q>):
	Change the recorded quantity of one holding. Exactly one of the
	three adjustment flags must be given.
`
}

func (c *cryptoAdjustCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "symbol or name of the holding to adjust")
	f.StringVar(&c.set, "set", "", "replace the quantity with this value")
	f.StringVar(&c.add, "add", "", "increase the quantity by this value")
	f.StringVar(&c.sub, "sub", "", "decrease the quantity by this value")
}

// parseQuantity returns nil for an empty flag value.
func parseQuantity(s string) (*tally.Quantity, error) {
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid quantity %q", s)
	}
	q := tally.Q(d)
	return &q, nil
}

func (c *cryptoAdjustCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Println("Missing -s <symbol>.")
		return subcommands.ExitUsageError
	}

	var adj tally.QuantityAdjustment
	var err error
	if adj.Set, err = parseQuantity(c.set); err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}
	if adj.Add, err = parseQuantity(c.add); err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}
	if adj.Subtract, err = parseQuantity(c.sub); err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	i, ok := ledger.FindCrypto(c.symbol)
	if !ok {
		fmt.Printf("No holding matches %q.\n", c.symbol)
		return subcommands.ExitFailure
	}
	before := ledger.CryptoHoldings()[i].Quantity

	holding, err := ledger.AdjustCryptoQuantity(i, adj, time.Now())
	switch {
	case errors.Is(err, tally.ErrConflictingAdjustment):
		fmt.Println("Use exactly one of -set, -add or -sub.")
		return subcommands.ExitUsageError
	case errors.Is(err, tally.ErrNegativeQuantity):
		fmt.Printf("Cannot reduce below zero: current quantity is %s.\n", before)
		return subcommands.ExitFailure
	case err != nil:
		log.Println(err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✓ %s quantity: %s → %s\n", holding.Name, before, holding.Quantity)
	return subcommands.ExitSuccess
}
