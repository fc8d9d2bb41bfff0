package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

// cryptoCmd groups the cryptocurrency subcommands.
type cryptoCmd struct{}

func (c *cryptoCmd) Name() string     { return "crypto" }
func (c *cryptoCmd) Synopsis() string { return "Manage cryptocurrency holdings." }
func (c *cryptoCmd) Usage() string {
	return `crypto <subcommand>:
	Manage the cryptocurrency holdings in the ledger.
`
}

func (c *cryptoCmd) SetFlags(f *flag.FlagSet) {}

func (c *cryptoCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "crypto")
	commander.Register(&cryptoAddCmd{}, "")
	commander.Register(&cryptoRemoveCmd{}, "")
	commander.Register(&cryptoAdjustCmd{}, "")
	commander.Register(&cryptoUpdateCmd{}, "")
	commander.Register(commander.HelpCommand(), "")
	return commander.Execute(ctx, args...)
}
