package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/subcommands"
	"github.com/tally-sh/tally"
)

type assetsAddCmd struct {
	assetType string
	name      string
	unit      string
	quantity  float64
	cost      float64
	price     float64
}

func (c *assetsAddCmd) Name() string     { return "add" }
func (c *assetsAddCmd) Synopsis() string { return "Add a hard asset." }
func (c *assetsAddCmd) Usage() string {
	return `assets add -type <type> -q <quantity> [-name <name>] [-unit <unit>] [-cost <avg cost>] [-price <unit price>]:
	Record a hard asset. For gold, silver, platinum and palladium the
	spot price is fetched and -price is only a fallback; for any other
	type -price is the value per stated unit.
`
}

func (c *assetsAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.assetType, "type", "", "asset type, e.g. gold, silver or land")
	f.StringVar(&c.name, "name", "", "display name (defaults to the type)")
	f.StringVar(&c.unit, "unit", "oz", "unit of the quantity, e.g. oz, g, acres")
	f.Float64Var(&c.quantity, "q", 0, "quantity held, in the stated unit")
	f.Float64Var(&c.cost, "cost", 0, "average cost per unit, 0 when unknown")
	f.Float64Var(&c.price, "price", 0, "current market value per unit")
}

func (c *assetsAddCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	tag := strings.ToLower(strings.TrimSpace(c.assetType))
	if tag == "" {
		fmt.Println("Missing -type <type>.")
		return subcommands.ExitUsageError
	}
	if c.quantity < 0 || c.cost < 0 || c.price < 0 {
		fmt.Println("Quantity, cost and price must not be negative.")
		return subcommands.ExitUsageError
	}

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

	name := c.name
	if name == "" {
		name = strings.ToUpper(tag[:1]) + tag[1:]
	}
	currency := ledger.Currency()

	asset, fetched, err := ledger.AddHardAsset(newMetalClient(config), tally.HardAsset{
		Name:        name,
		Type:        tag,
		Unit:        c.unit,
		Quantity:    tally.Q(c.quantity),
		AverageCost: tally.M(c.cost, currency),
	}, tally.M(c.price, currency), time.Now())
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✓ Added %s %s of %s.\n", asset.Quantity, asset.Unit, asset.Name)
	if asset.IsPreciousMetal() && !fetched {
		fmt.Println("  Could not fetch the spot price; using the -price value instead.")
		fmt.Println("  Set METALS_API_KEY or run 'tly config -metals-api-key <key>' for live quotes.")
	}
	fmt.Printf("  Current value: %s\n", asset.Value())
	return subcommands.ExitSuccess
}
