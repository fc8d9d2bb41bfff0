// Package coingecko implements the crypto price source: spot prices and
// identifier search against the CoinGecko API.
//
// Every fault is converted to a typed outcome at this boundary: an unknown
// identifier is ErrNotFound, a transport problem is a *NetworkError, and a
// malformed payload is a *FormatError. Nothing escapes untyped.
package coingecko

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const defaultBaseURL = "https://api.coingecko.com/api/v3"

// requestTimeout bounds every price and search call.
const requestTimeout = 10 * time.Second

// ErrNotFound is returned when the API has no data for the requested
// identifier or search term.
var ErrNotFound = errors.New("coingecko: not found")

// NetworkError reports a transport-level failure: unreachable host, timeout,
// or an error status from the API.
type NetworkError struct{ Err error }

func (e *NetworkError) Error() string { return fmt.Sprintf("coingecko: network error: %v", e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// FormatError reports a response that arrived but could not be interpreted.
type FormatError struct{ Detail string }

func (e *FormatError) Error() string { return fmt.Sprintf("coingecko: format error: %s", e.Detail) }

// Client queries the CoinGecko API. The zero value is ready to use against
// the public API.
type Client struct {
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

// Price returns the current price in US dollars for a canonical asset
// identifier (e.g. "bitcoin").
func (c *Client) Price(id string) (float64, error) {
	addr := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd", c.base(), url.QueryEscape(id))

	// The response object is keyed by asset id: {"bitcoin":{"usd":50000}}.
	// There is no fixed shape to unmarshal into, so extract by path.
	var jobj any
	if err := jwget(c.client(), addr, &jobj); err != nil {
		return 0, err
	}
	jval, err := jsonpath.Get(fmt.Sprintf("$[%q].usd", id), jobj)
	if err != nil {
		// The id key is simply absent when CoinGecko does not know the asset.
		return 0, ErrNotFound
	}
	price, ok := jval.(float64)
	if !ok {
		return 0, &FormatError{Detail: fmt.Sprintf("price for %q is not a number: %v", id, jval)}
	}
	return price, nil
}
