package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/google/subcommands"
)

type cryptoRemoveCmd struct{}

func (c *cryptoRemoveCmd) Name() string     { return "remove" }
func (c *cryptoRemoveCmd) Synopsis() string { return "Remove a cryptocurrency holding." }
func (c *cryptoRemoveCmd) Usage() string {
	return `crypto remove [<n>]:
	Remove the n-th holding (1-based, as listed with no argument).
`
}

func (c *cryptoRemoveCmd) SetFlags(f *flag.FlagSet) {}

func (c *cryptoRemoveCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	holdings := ledger.CryptoHoldings()
	if len(holdings) == 0 {
		fmt.Println("No cryptocurrency holdings recorded.")
		return subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		for i, h := range holdings {
			fmt.Printf("%d. %s (%s): %s\n", i+1, h.Name, h.ID, h.Quantity)
		}
		fmt.Println("Run 'tly crypto remove <n>' to remove one.")
		return subcommands.ExitSuccess
	}

	n, err := strconv.Atoi(f.Arg(0))
	if err != nil || n < 1 || n > len(holdings) {
		fmt.Printf("Pick a number between 1 and %d.\n", len(holdings))
		return subcommands.ExitUsageError
	}

	removed, err := ledger.RemoveCrypto(n - 1)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✓ Removed %s (%s).\n", removed.Name, removed.ID)
	return subcommands.ExitSuccess
}
