package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/tally-sh/tally"
	"github.com/tally-sh/tally/renderer"
)

// cashCmd groups the cash subcommands.
type cashCmd struct{}

func (c *cashCmd) Name() string     { return "cash" }
func (c *cashCmd) Synopsis() string { return "Manage the cash balance." }
func (c *cashCmd) Usage() string {
	return `cash <subcommand>:
	Inspect and adjust the cash balance in the ledger.
`
}

func (c *cashCmd) SetFlags(f *flag.FlagSet) {}

func (c *cashCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "cash")
	commander.Register(&cashShowCmd{}, "")
	commander.Register(&cashUpdateCmd{}, "")
	commander.Register(commander.HelpCommand(), "")
	return commander.Execute(ctx, args...)
}

type cashShowCmd struct{}

func (c *cashShowCmd) Name() string     { return "show" }
func (c *cashShowCmd) Synopsis() string { return "Show the cash balance." }
func (c *cashShowCmd) Usage() string {
	return `cash show:
	Print the current cash balance.
`
}

func (c *cashShowCmd) SetFlags(f *flag.FlagSet) {}

func (c *cashShowCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	ledger, err := LoadLedger()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CashMarkdown(ledger.Cash()))
	return subcommands.ExitSuccess
}

type cashUpdateCmd struct {
	add string
	sub string
}

func (c *cashUpdateCmd) Name() string     { return "update" }
func (c *cashUpdateCmd) Synopsis() string { return "Adjust the cash balance." }
func (c *cashUpdateCmd) Usage() string {
	return `cash update [-add <amount>] [-sub <amount>]:
	Net the given amounts into the cash balance. The balance may go
	negative; an overdraft is recorded as such.
`
}

func (c *cashUpdateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "amount to add")
	f.StringVar(&c.sub, "sub", "", "amount to subtract")
}

// parseAmount returns a zero amount for an empty flag value.
func parseAmount(s, currency string) (tally.Money, error) {
	if s == "" {
		return tally.M(0, currency), nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return tally.Money{}, fmt.Errorf("invalid amount %q", s)
	}
	return tally.M(d, currency), nil
}

func (c *cashUpdateCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if c.add == "" && c.sub == "" {
		fmt.Println("Give -add and/or -sub an amount.")
		return subcommands.ExitUsageError
	}

	ledger, err := LoadLedger()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	currency := ledger.Currency()

	add, err := parseAmount(c.add, currency)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}
	sub, err := parseAmount(c.sub, currency)
	if err != nil {
		fmt.Println(err)
		return subcommands.ExitUsageError
	}

	balance := ledger.AdjustCash(add, sub)
	if err := SaveLedger(ledger); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Printf("✓ Cash change %s → balance %s\n", add.Sub(sub).SignedString(), balance)
	return subcommands.ExitSuccess
}
