// Package robinhood implements the equities position source. A query is a
// full authenticate-fetch-logout sequence: nothing is persisted, and the
// session is always released, even when the fetch fails.
//
// Outcomes are typed at this boundary: ErrMissingCredentials when the account
// is not configured, ErrUnavailable when the integration endpoint is gone (a
// permanent, expected condition), and *AuthError for an authentication or
// fetch failure carrying its cause.
package robinhood

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tally-sh/tally"
)

const defaultBaseURL = "https://api.robinhood.com"

const requestTimeout = 10 * time.Second

// ErrMissingCredentials is returned when username, password, or account
// number is absent. No request is made.
var ErrMissingCredentials = errors.New("robinhood: missing credentials")

// ErrUnavailable is returned when the integration endpoint no longer exists.
// It is permanent and expected; callers should guide the user, not retry.
var ErrUnavailable = errors.New("robinhood: integration unavailable")

// AuthError reports a failed login or position fetch, carrying the cause.
type AuthError struct{ Err error }

func (e *AuthError) Error() string { return fmt.Sprintf("robinhood: login or fetch failed: %v", e.Err) }
func (e *AuthError) Unwrap() error { return e.Err }

// Client queries the brokerage API. The zero value is ready to use against
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

// Positions opens a session, fetches the account's open stock positions with
// their latest prices, and releases the session.
//
// Individual positions that cannot be resolved or priced are dropped from the
// result instead of failing the whole query, so the total equity reflects
// only successfully priced positions. A logout failure never surfaces.
func (c *Client) Positions(creds Credentials) (*tally.EquitiesSnapshot, error) {
	if !creds.complete() {
		return nil, ErrMissingCredentials
	}

	token, err := c.login(creds)
	if err != nil {
		return nil, err
	}
	defer c.logout(token)

	raw, err := c.openPositions(token, creds.AccountNumber)
	if err != nil {
		return nil, &AuthError{Err: err}
	}

	snapshot := &tally.EquitiesSnapshot{TotalEquity: tally.M(0, "USD")}
	for _, pos := range raw {
		symbol, err := c.symbol(token, pos.Instrument)
		if err != nil {
			log.Printf("skipping position %s: %v", pos.Instrument, err)
			continue
		}
		price, err := c.latestPrice(token, symbol)
		if err != nil {
			log.Printf("skipping position %s: %v", symbol, err)
			continue
		}
		qty, err := decimal.NewFromString(pos.Quantity)
		if err != nil {
			log.Printf("skipping position %s: bad quantity %q", symbol, pos.Quantity)
			continue
		}

		p := tally.EquityPosition{
			Symbol:   symbol,
			Quantity: tally.Q(qty),
			Price:    tally.M(price, "USD"),
		}
		p.Equity = p.Price.Mul(p.Quantity)
		snapshot.Positions = append(snapshot.Positions, p)
		snapshot.TotalEquity = snapshot.TotalEquity.Add(p.Equity)
	}
	return snapshot, nil
}

// login opens a session and returns its access token.
func (c *Client) login(creds Credentials) (token string, err error) {
	body, _ := json.Marshal(map[string]string{
		"username":   creds.Username,
		"password":   creds.Password,
		"grant_type": "password",
	})
	resp, err := c.client().Post(c.base()+"/oauth2/token/", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", &AuthError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		// The endpoint itself is gone: the integration is retired.
		return "", ErrUnavailable
	case resp.StatusCode != http.StatusOK:
		return "", &AuthError{Err: fmt.Errorf("login rejected: %v", resp.Status)}
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := decodeBody(resp.Body, &payload); err != nil {
		return "", &AuthError{Err: err}
	}
	if payload.AccessToken == "" {
		return "", &AuthError{Err: errors.New("login response carries no access token")}
	}
	return payload.AccessToken, nil
}

// logout releases the session. Failures are swallowed: the session will
// expire on its own, and the positions were already fetched (or not).
func (c *Client) logout(token string) {
	body := strings.NewReader(url.Values{"token": {token}}.Encode())
	req, err := http.NewRequest(http.MethodPost, c.base()+"/oauth2/revoke_token/", body)
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.client().Do(req)
	if err != nil {
		log.Printf("logout failed (ignored): %v", err)
		return
	}
	resp.Body.Close()
}

// jposition is one open position as returned by the API.
type jposition struct {
	Instrument string `json:"instrument"` // URL of the instrument resource
	Quantity   string `json:"quantity"`
}

// openPositions returns the account's open stock positions.
func (c *Client) openPositions(token, accountNumber string) ([]jposition, error) {
	addr := fmt.Sprintf("%s/positions/?nonzero=true&account_number=%s", c.base(), url.QueryEscape(accountNumber))
	var payload struct {
		Results []jposition `json:"results"`
	}
	if err := c.get(token, addr, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// symbol resolves an instrument resource URL to its ticker symbol.
func (c *Client) symbol(token, instrumentURL string) (string, error) {
	var payload struct {
		Symbol string `json:"symbol"`
	}
	if err := c.get(token, instrumentURL, &payload); err != nil {
		return "", err
	}
	if payload.Symbol == "" {
		return "", errors.New("instrument carries no symbol")
	}
	return payload.Symbol, nil
}

// latestPrice returns the latest trade price for a symbol, at the quote's
// own precision.
func (c *Client) latestPrice(token, symbol string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/quotes/%s/", c.base(), url.PathEscape(symbol))
	var payload struct {
		LastTradePrice string `json:"last_trade_price"`
	}
	if err := c.get(token, addr, &payload); err != nil {
		return decimal.Decimal{}, err
	}
	price, err := decimal.NewFromString(payload.LastTradePrice)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("bad price %q for %s", payload.LastTradePrice, symbol)
	}
	return price, nil
}

// get performs an authenticated GET and unmarshals the JSON response.
func (c *Client) get(token, addr string, data interface{}) error {
	req, err := http.NewRequest(http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := c.client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return decodeBody(resp.Body, data)
}

func decodeBody(r io.Reader, data interface{}) error {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
