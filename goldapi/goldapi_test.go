package goldapi

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, key string, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &Client{APIKey: key, BaseURL: server.URL, HTTPClient: server.Client()}
}

func TestSpot(t *testing.T) {
	c := testClient(t, "k3y", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/XAU/USD", r.URL.Path)
		assert.Equal(t, "k3y", r.Header.Get("x-access-token"))
		w.Write([]byte(`{"price": 2412.30, "currency": "USD"}`))
	})

	price, err := c.Spot("gold")
	require.NoError(t, err)
	assert.Equal(t, 2412.30, price)
}

func TestSpotSymbols(t *testing.T) {
	var path string
	c := testClient(t, "k3y", func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"price": 1.0}`))
	})

	tests := []struct{ metal, want string }{
		{"gold", "/XAU/USD"},
		{"Silver", "/XAG/USD"},
		{"platinum", "/XPT/USD"},
		{"PALLADIUM", "/XPD/USD"},
	}
	for _, tt := range tests {
		_, err := c.Spot(tt.metal)
		require.NoError(t, err)
		assert.Equal(t, tt.want, path, "metal %q", tt.metal)
	}
}

func TestSpotUnsupportedMetal(t *testing.T) {
	c := &Client{APIKey: "k3y"}
	_, err := c.Spot("copper")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnconfigured)
}

func TestSpotWithoutKey(t *testing.T) {
	c := &Client{}
	_, err := c.Spot("gold")
	assert.ErrorIs(t, err, ErrUnconfigured)
}

func TestSpotServerError(t *testing.T) {
	c := testClient(t, "k3y", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	})
	_, err := c.Spot("gold")
	assert.Error(t, err)
}

func TestSpotMissingPrice(t *testing.T) {
	c := testClient(t, "k3y", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"currency": "USD"}`))
	})
	_, err := c.Spot("gold")
	assert.ErrorContains(t, err, "no price data")
}
