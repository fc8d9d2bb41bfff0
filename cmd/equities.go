package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/tally-sh/tally/renderer"
	"github.com/tally-sh/tally/robinhood"
)

// equitiesCmd groups the brokerage subcommands. Positions live at the
// brokerage, so there is nothing to add or remove here, only to show.
type equitiesCmd struct{}

func (c *equitiesCmd) Name() string     { return "equities" }
func (c *equitiesCmd) Synopsis() string { return "Show live brokerage positions." }
func (c *equitiesCmd) Usage() string {
	return `equities <subcommand>:
	Inspect the stock positions held at the brokerage.
`
}

func (c *equitiesCmd) SetFlags(f *flag.FlagSet) {}

func (c *equitiesCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "equities")
	commander.Register(&equitiesShowCmd{}, "")
	commander.Register(commander.HelpCommand(), "")
	return commander.Execute(ctx, args...)
}

type equitiesShowCmd struct{}

func (c *equitiesShowCmd) Name() string     { return "show" }
func (c *equitiesShowCmd) Synopsis() string { return "List open stock positions." }
func (c *equitiesShowCmd) Usage() string {
	return `equities show:
	Log into the brokerage, list the open positions with their live
	prices, and log out. Nothing is persisted.
`
}

func (c *equitiesShowCmd) SetFlags(f *flag.FlagSet) {}

func (c *equitiesShowCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	config, err := LoadConfig()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	snapshot, err := fetchEquities(config)
	var autherr *robinhood.AuthError
	switch {
	case errors.Is(err, robinhood.ErrMissingCredentials):
		fmt.Println("Missing brokerage credentials.")
		fmt.Println("Set USERNAME, PASSWORD and ACCOUNT_NUMBER in the environment or a .env file,")
		fmt.Println("or run 'tly config -rh-username <u> -rh-password <p> -rh-account <n>'.")
		return subcommands.ExitFailure
	case errors.Is(err, robinhood.ErrUnavailable):
		fmt.Println("The brokerage integration is unavailable.")
		return subcommands.ExitFailure
	case errors.As(err, &autherr):
		fmt.Printf("Brokerage login failed: %v\n", autherr.Err)
		return subcommands.ExitFailure
	case err != nil:
		log.Println(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.EquitiesMarkdown(snapshot))
	return subcommands.ExitSuccess
}
