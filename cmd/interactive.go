package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// interactiveCmd runs a small shell so that repeated operations do not pay
// a process start per command. Each line is parsed by a fresh commander,
// so flag state never leaks from one line to the next.
type interactiveCmd struct{}

func (c *interactiveCmd) Name() string     { return "interactive" }
func (c *interactiveCmd) Synopsis() string { return "Run commands from a prompt." }
func (c *interactiveCmd) Usage() string {
	return `interactive:
	Read commands from a 'tly>' prompt until exit or end of input.
`
}

func (c *interactiveCmd) SetFlags(f *flag.FlagSet) {}

func (c *interactiveCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	fmt.Println("Type a command ('help' lists them), or 'exit' to leave.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("tly> ")
		if !scanner.Scan() {
			fmt.Println()
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "exit", "quit", "q":
			return subcommands.ExitSuccess
		case "interactive":
			fmt.Println("Already at the prompt.")
			continue
		}

		fs := flag.NewFlagSet("tly", flag.ContinueOnError)
		commander := subcommands.NewCommander(fs, "tly")
		Register(commander)
		commander.Register(commander.HelpCommand(), "")
		if err := fs.Parse(strings.Fields(line)); err != nil {
			continue
		}
		commander.Execute(ctx)
	}
	return subcommands.ExitSuccess
}
