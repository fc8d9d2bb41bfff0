package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"

	"github.com/google/subcommands"
)

type assetsRemoveCmd struct{}

func (c *assetsRemoveCmd) Name() string     { return "remove" }
func (c *assetsRemoveCmd) Synopsis() string { return "Remove a hard asset." }
func (c *assetsRemoveCmd) Usage() string {
	return `assets remove [<n>]:
	Remove the n-th hard asset (1-based, as listed with no argument).
	Precious metals are listed first, other assets after.
`
}

func (c *assetsRemoveCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetsRemoveCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	assets := ledger.HardAssets()
	if len(assets) == 0 {
		fmt.Println("No hard assets recorded.")
		return subcommands.ExitSuccess
	}

	if f.NArg() == 0 {
		for i, a := range assets {
			fmt.Printf("%d. %s: %s %s\n", i+1, a.Name, a.Quantity, a.Unit)
		}
		fmt.Println("Run 'tly assets remove <n>' to remove one.")
		return subcommands.ExitSuccess
	}

	n, err := strconv.Atoi(f.Arg(0))
	if err != nil || n < 1 || n > len(assets) {
		fmt.Printf("Pick a number between 1 and %d.\n", len(assets))
		return subcommands.ExitUsageError
	}

	removed, err := ledger.RemoveHardAsset(n - 1)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✓ Removed %s.\n", removed.Name)
	return subcommands.ExitSuccess
}
