// Package goldapi implements the precious-metal spot price source against
// the GoldAPI.io service. Prices are quoted in US dollars per troy ounce.
package goldapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBaseURL = "https://www.goldapi.io/api"

const requestTimeout = 10 * time.Second

// ErrUnconfigured is returned when no API key is set. It is an expected
// condition, not a fetch failure: callers fall back to manual price entry.
var ErrUnconfigured = errors.New("goldapi: no API key configured")

// symbols maps the supported metal tags to the API's metal symbols.
var symbols = map[string]string{
	"gold":      "XAU",
	"silver":    "XAG",
	"platinum":  "XPT",
	"palladium": "XPD",
}

// Client queries the GoldAPI.io spot price service.
type Client struct {
	APIKey     string
	BaseURL    string       // defaults to the public API
	HTTPClient *http.Client // defaults to a client with a bounded timeout
}

func (c *Client) base() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return defaultBaseURL
}

func (c *Client) client() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: requestTimeout}
}

// Spot returns the current spot price in US dollars per troy ounce for a
// metal tag from the fixed set {gold, silver, platinum, palladium}.
//
// A tag outside the set is a programming error on the caller's side, not a
// provider outcome, and is reported as a plain error.
func (c *Client) Spot(metal string) (float64, error) {
	symbol, ok := symbols[strings.ToLower(metal)]
	if !ok {
		return 0, fmt.Errorf("goldapi: unsupported metal type %q", metal)
	}
	if c.APIKey == "" {
		return 0, ErrUnconfigured
	}

	addr := fmt.Sprintf("%s/%s/USD", c.base(), symbol)
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return 0, fmt.Errorf("goldapi: %w", err)
	}
	req.Header.Set("x-access-token", c.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client().Do(req)
	if err != nil {
		return 0, fmt.Errorf("goldapi: network error fetching %s price: %w", metal, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return 0, fmt.Errorf("goldapi: cannot fetch %s price: %v", metal, resp.Status)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return 0, fmt.Errorf("goldapi: network error fetching %s price: %w", metal, err)
	}

	var payload struct {
		Price *float64 `json:"price"`
	}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		return 0, fmt.Errorf("goldapi: format error in %s price response: %w", metal, err)
	}
	if payload.Price == nil {
		return 0, fmt.Errorf("goldapi: no price data in response for %s", metal)
	}
	return *payload.Price, nil
}
