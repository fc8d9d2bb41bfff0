package coingecko

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testClient returns a client wired to a test server serving the given
// handler. The explicit HTTPClient also bypasses the on-disk search cache.
func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Client{BaseURL: server.URL, HTTPClient: server.Client()}
}

func TestPrice(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "bitcoin", r.URL.Query().Get("ids"))
		assert.Equal(t, "usd", r.URL.Query().Get("vs_currencies"))
		w.Write([]byte(`{"bitcoin": {"usd": 60123.45}}`))
	})

	price, err := c.Price("bitcoin")
	require.NoError(t, err)
	assert.Equal(t, 60123.45, price)
}

func TestPriceUnknownID(t *testing.T) {
	// CoinGecko answers an empty object for ids it does not know
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.Price("nosuchcoin")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriceMalformedValue(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"bitcoin": {"usd": "sixty thousand"}}`))
	})

	_, err := c.Price("bitcoin")
	var ferr *FormatError
	assert.ErrorAs(t, err, &ferr)
}

func TestPriceServerError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	_, err := c.Price("bitcoin")
	var nerr *NetworkError
	assert.ErrorAs(t, err, &nerr)
}

func TestPriceUnreachableHost(t *testing.T) {
	c := &Client{BaseURL: "http://127.0.0.1:1", HTTPClient: &http.Client{}}
	_, err := c.Price("bitcoin")
	var nerr *NetworkError
	require.ErrorAs(t, err, &nerr)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestSearch(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "btc", r.URL.Query().Get("query"))
		w.Write([]byte(`{"coins": [
			{"id": "bitcoin", "name": "Bitcoin", "symbol": "BTC"},
			{"id": "wrapped-bitcoin", "name": "Wrapped Bitcoin", "symbol": "WBTC"}
		]}`))
	})

	id, name, err := c.Search("btc")
	require.NoError(t, err)
	// only the top-ranked result is used
	assert.Equal(t, "bitcoin", id)
	assert.Equal(t, "Bitcoin", name)
}

func TestSearchNoMatch(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"coins": []}`))
	})

	_, _, err := c.Search("nosuchcoin")
	assert.ErrorIs(t, err, ErrNotFound)
}
