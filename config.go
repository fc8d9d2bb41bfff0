package tally

import (
	"encoding/json"
	"fmt"
	"io"
)

// Preferences holds display and refresh settings.
type Preferences struct {
	Currency        string `json:"currency"`
	ShowCostBasis   bool   `json:"show_cost_basis"`
	UpdateFrequency int    `json:"update_frequency"` // seconds
}

// BrokerageCredentials is the optional credential block for the equities
// position source. Credentials are passed explicitly to the adapter; they are
// never mirrored into process-wide state.
type BrokerageCredentials struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	AccountNumber string `json:"account_number"`
}

// Config is the persisted configuration document.
type Config struct {
	APIKeys     map[string]string    `json:"api_keys"`
	Preferences Preferences          `json:"preferences"`
	Robinhood   BrokerageCredentials `json:"robinhood,omitzero"`
}

// Named API key slots in the APIKeys map.
const (
	APIKeyCoinGecko = "coingecko"
	APIKeyMetals    = "metals_api"
)

// NewConfig returns the default configuration.
func NewConfig() *Config {
	return &Config{
		APIKeys: map[string]string{APIKeyCoinGecko: "", APIKeyMetals: ""},
		Preferences: Preferences{
			Currency:        "USD",
			ShowCostBasis:   true,
			UpdateFrequency: 300,
		},
	}
}

// MetalsAPIKey returns the configured metals API key, or "" when none is set.
func (c *Config) MetalsAPIKey() string { return c.APIKeys[APIKeyMetals] }

// DecodeConfig reads a configuration document, filling absent fields with
// their defaults.
func DecodeConfig(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read config document: %w", err)
	}

	c := NewConfig()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("format error in config document: %w", err)
	}
	if c.APIKeys == nil {
		c.APIKeys = map[string]string{APIKeyCoinGecko: "", APIKeyMetals: ""}
	}
	if c.Preferences.Currency == "" {
		c.Preferences.Currency = "USD"
	}
	return c, nil
}

// EncodeConfig writes the whole configuration document.
func EncodeConfig(w io.Writer, c *Config) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode config document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write config document: %w", err)
	}
	return nil
}
