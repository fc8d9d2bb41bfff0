package coingecko

import (
	"fmt"
	"net/url"
)

// searchResult matches the structure of the CoinGecko search API response.
type searchResult struct {
	Coins []struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Symbol string `json:"symbol"`
	} `json:"coins"`
}

// Search resolves a free-text symbol or name (e.g. "BTC", "Bitcoin") to a
// canonical asset identifier and display name.
//
// The API ranks results by relevance and only the first one is returned, so
// an ambiguous query silently resolves to the top-ranked asset. When nothing
// matches, Search returns ErrNotFound.
func (c *Client) Search(term string) (id, name string, err error) {
	addr := fmt.Sprintf("%s/search?query=%s", c.base(), url.QueryEscape(term))

	var result searchResult
	// Searches resolve stable identifiers, so responses are cached for a day.
	if err := jwget(c.searchClient(), addr, &result); err != nil {
		return "", "", err
	}
	if len(result.Coins) == 0 {
		return "", "", ErrNotFound
	}
	best := result.Coins[0]
	return best.ID, best.Name, nil
}
