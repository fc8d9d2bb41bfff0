// Package cmd implements the 'tly' command line application.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/tally-sh/tally"
	"github.com/tally-sh/tally/coingecko"
	"github.com/tally-sh/tally/goldapi"
	"github.com/tally-sh/tally/robinhood"
)

// Register declares all portfolio commands on the given commander.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "portfolio")
	c.Register(&updateCmd{}, "portfolio")
	c.Register(&configCmd{}, "portfolio")
	c.Register(&interactiveCmd{}, "portfolio")

	c.Register(&cryptoCmd{}, "holdings")
	c.Register(&assetsCmd{}, "holdings")
	c.Register(&equitiesCmd{}, "holdings")
	c.Register(&cashCmd{}, "holdings")
}

var dataDir = flag.String("data-dir", "", "path to the data directory (default ~/.tally)")

func resolveDataDir() (string, error) {
	if *dataDir != "" {
		return *dataDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".tally"), nil
}

// LoadLedger reads the ledger document from the data directory. A missing
// file is not an error: it returns an empty ledger.
func LoadLedger() (*tally.Ledger, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, "ledger.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return tally.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger: %w", err)
	}
	defer f.Close()

	ledger, err := tally.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}

// SaveLedger persists the whole ledger document, replacing the previous one.
func SaveLedger(ledger *tally.Ledger) error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "ledger.json"))
	if err != nil {
		return fmt.Errorf("cannot write ledger: %w", err)
	}
	defer f.Close()
	return tally.EncodeLedger(f, ledger)
}

// LoadConfig reads the configuration document, falling back to defaults
// when none exists yet.
func LoadConfig() (*tally.Config, error) {
	dir, err := resolveDataDir()
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, "config.json"))
	if errors.Is(err, fs.ErrNotExist) {
		return tally.NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open config: %w", err)
	}
	defer f.Close()

	config, err := tally.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}
	return config, nil
}

// SaveConfig persists the whole configuration document.
func SaveConfig(config *tally.Config) error {
	dir, err := resolveDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create data directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "config.json"))
	if err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}
	defer f.Close()
	return tally.EncodeConfig(f, config)
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when the renderer fails.
func printMarkdown(doc string) {
	out, err := glamour.Render(doc, "auto")
	if err != nil {
		fmt.Print(doc)
		return
	}
	fmt.Print(out)
}

func newCryptoClient() *coingecko.Client { return &coingecko.Client{} }

func newMetalClient(config *tally.Config) *goldapi.Client {
	key := os.Getenv("METALS_API_KEY")
	if key == "" {
		key = config.MetalsAPIKey()
	}
	return &goldapi.Client{APIKey: key}
}

// fetchEquities logs into the brokerage and returns the live positions
// snapshot. Credentials from the config are completed with .env values.
func fetchEquities(config *tally.Config) (*tally.EquitiesSnapshot, error) {
	creds := robinhood.Credentials{
		Username:      config.Robinhood.Username,
		Password:      config.Robinhood.Password,
		AccountNumber: config.Robinhood.AccountNumber,
	}.FillFrom(robinhood.CredentialsFromEnv())

	client := &robinhood.Client{}
	return client.Positions(creds)
}
