package tally

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()
	if c.Preferences.Currency != "USD" {
		t.Errorf("currency = %q, want USD", c.Preferences.Currency)
	}
	if !c.Preferences.ShowCostBasis {
		t.Error("cost basis columns should default to shown")
	}
	if c.Preferences.UpdateFrequency != 300 {
		t.Errorf("update frequency = %d, want 300", c.Preferences.UpdateFrequency)
	}
	if c.MetalsAPIKey() != "" {
		t.Errorf("metals key = %q, want empty", c.MetalsAPIKey())
	}
}

// Partial documents keep the defaults for whatever they do not mention.
func TestDecodeConfigPartial(t *testing.T) {
	c, err := DecodeConfig(strings.NewReader(`{"preferences": {"currency": "EUR"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if c.Preferences.Currency != "EUR" {
		t.Errorf("currency = %q, want EUR", c.Preferences.Currency)
	}
	if c.Preferences.UpdateFrequency != 300 {
		t.Errorf("update frequency = %d, want the 300 default", c.Preferences.UpdateFrequency)
	}
}

// A credential block that was never configured stays out of the document.
func TestEncodeConfigOmitsEmptyCredentials(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeConfig(&buf, NewConfig()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "robinhood") {
		t.Errorf("empty credentials serialized:\n%s", buf.String())
	}
}

func TestConfigRoundTrip(t *testing.T) {
	c := NewConfig()
	c.APIKeys[APIKeyMetals] = "secret"
	c.Robinhood.Username = "user@example.com"

	var buf bytes.Buffer
	if err := EncodeConfig(&buf, c); err != nil {
		t.Fatal(err)
	}
	got, err := DecodeConfig(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got.MetalsAPIKey() != "secret" {
		t.Errorf("metals key = %q, want secret", got.MetalsAPIKey())
	}
	if got.Robinhood.Username != "user@example.com" {
		t.Errorf("username = %q", got.Robinhood.Username)
	}
}
