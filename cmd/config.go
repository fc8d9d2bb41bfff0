package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/tally-sh/tally"
)

// configCmd reads and writes the persisted settings. String flags left at
// their empty default mean "unchanged", so the command only rewrites the
// fields it was given.
type configCmd struct {
	currency      string
	showCostBasis string
	frequency     int
	coingeckoKey  string
	metalsKey     string
	rhUsername    string
	rhPassword    string
	rhAccount     string
}

func (c *configCmd) Name() string     { return "config" }
func (c *configCmd) Synopsis() string { return "Show or change the settings." }
func (c *configCmd) Usage() string {
	return `config [flags]:
	With no flag, print the current settings. With flags, change the
	given settings and save the configuration.
`
}

func (c *configCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.currency, "currency", "", "display currency code, e.g. USD")
	f.StringVar(&c.showCostBasis, "show-cost-basis", "", "show cost basis columns: true or false")
	f.IntVar(&c.frequency, "update-frequency", -1, "price refresh interval in seconds")
	f.StringVar(&c.coingeckoKey, "coingecko-api-key", "", "API key for the cryptocurrency source")
	f.StringVar(&c.metalsKey, "metals-api-key", "", "API key for the metals spot price source")
	f.StringVar(&c.rhUsername, "rh-username", "", "brokerage username")
	f.StringVar(&c.rhPassword, "rh-password", "", "brokerage password")
	f.StringVar(&c.rhAccount, "rh-account", "", "brokerage account number")
}

func (c *configCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	config, err := LoadConfig()
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	changed := false
	if c.currency != "" {
		config.Preferences.Currency = strings.ToUpper(c.currency)
		changed = true
	}
	if c.showCostBasis != "" {
		v, err := strconv.ParseBool(c.showCostBasis)
		if err != nil {
			fmt.Println("-show-cost-basis takes true or false.")
			return subcommands.ExitUsageError
		}
		config.Preferences.ShowCostBasis = v
		changed = true
	}
	if c.frequency >= 0 {
		config.Preferences.UpdateFrequency = c.frequency
		changed = true
	}
	if c.coingeckoKey != "" {
		config.APIKeys[tally.APIKeyCoinGecko] = c.coingeckoKey
		changed = true
	}
	if c.metalsKey != "" {
		config.APIKeys[tally.APIKeyMetals] = c.metalsKey
		changed = true
	}
	if c.rhUsername != "" {
		config.Robinhood.Username = c.rhUsername
		changed = true
	}
	if c.rhPassword != "" {
		config.Robinhood.Password = c.rhPassword
		changed = true
	}
	if c.rhAccount != "" {
		config.Robinhood.AccountNumber = c.rhAccount
		changed = true
	}

	if !changed {
		fmt.Printf("currency:         %s\n", config.Preferences.Currency)
		fmt.Printf("show cost basis:  %t\n", config.Preferences.ShowCostBasis)
		fmt.Printf("update frequency: %ds\n", config.Preferences.UpdateFrequency)
		fmt.Printf("coingecko key:    %s\n", mask(config.APIKeys[tally.APIKeyCoinGecko]))
		fmt.Printf("metals key:       %s\n", mask(config.APIKeys[tally.APIKeyMetals]))
		fmt.Printf("rh username:      %s\n", config.Robinhood.Username)
		fmt.Printf("rh password:      %s\n", mask(config.Robinhood.Password))
		fmt.Printf("rh account:       %s\n", config.Robinhood.AccountNumber)
		return subcommands.ExitSuccess
	}

	if err := SaveConfig(config); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	fmt.Println("✓ Settings saved.")
	return subcommands.ExitSuccess
}

// mask hides a secret, keeping just enough to recognize it.
func mask(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
