package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// assetsCmd groups the hard asset subcommands.
type assetsCmd struct{}

func (c *assetsCmd) Name() string     { return "assets" }
func (c *assetsCmd) Synopsis() string { return "Manage precious metals and other hard assets." }
func (c *assetsCmd) Usage() string {
	return `assets <subcommand>:
	Manage the hard assets in the ledger. Gold, silver, platinum and
	palladium are priced per troy ounce from the spot market; anything
	else keeps the value you record for it.
`
}

func (c *assetsCmd) SetFlags(f *flag.FlagSet) {}

func (c *assetsCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "assets")
	commander.Register(&assetsAddCmd{}, "")
	commander.Register(&assetsRemoveCmd{}, "")
	commander.Register(&assetsUpdateCmd{}, "")
	commander.Register(commander.HelpCommand(), "")
	return commander.Execute(ctx, args...)
}
