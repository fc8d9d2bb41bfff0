package tally

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// This file contains code to persist the ledger as a single human-readable
// JSON document. Persistence is whole-document: the caller loads the entire
// document, mutates the ledger in memory, and writes the entire document
// back. Loading is backward-compatible: any missing top-level section is
// synthesized with its empty default instead of failing.

// to persist json, we use dedicated local structs with tag annotations.

type jcrypto struct {
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	AverageCost  decimal.Decimal `json:"average_cost"`
	CurrentPrice decimal.Decimal `json:"current_price"`
	LastUpdated  string          `json:"last_updated,omitempty"`
}

type jhardAsset struct {
	Name        string          `json:"name"`
	Type        string          `json:"type"`
	Unit        string          `json:"unit"`
	Quantity    decimal.Decimal `json:"quantity"`
	AverageCost decimal.Decimal `json:"average_cost"`
	SpotPrice   decimal.Decimal `json:"current_spot_price"`
	LastUpdated string          `json:"last_updated,omitempty"`
}

type jledger struct {
	Crypto *struct {
		Holdings []jcrypto `json:"holdings"`
	} `json:"crypto"`
	HardAssets *struct {
		PreciousMetals []jhardAsset `json:"precious_metals"`
		Other          []jhardAsset `json:"other"`
	} `json:"hard_assets"`
	Cash *struct {
		Balance  decimal.Decimal `json:"balance"`
		Currency string          `json:"currency"`
	} `json:"cash"`
}

// parseTimestamp reads a holding timestamp leniently: documents written by
// older versions carry a local ISO timestamp without a zone.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DecodeLedger reads a ledger document. Missing sections are synthesized
// with their empty defaults so that older or partial documents still load.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger document: %w", err)
	}

	var doc jledger
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("format error in ledger document: %w", err)
	}

	l := NewLedger()
	if doc.Cash != nil {
		currency := doc.Cash.Currency
		if currency == "" {
			currency = "USD"
		}
		l.cash = M(doc.Cash.Balance, currency)
	}
	currency := l.Currency()

	if doc.Crypto != nil {
		for _, j := range doc.Crypto.Holdings {
			l.crypto = append(l.crypto, CryptoHolding{
				ID:           j.Symbol,
				Name:         j.Name,
				Quantity:     Q(j.Quantity),
				AverageCost:  M(j.AverageCost, currency),
				CurrentPrice: M(j.CurrentPrice, currency),
				LastUpdated:  parseTimestamp(j.LastUpdated),
			})
		}
	}
	if doc.HardAssets != nil {
		decode := func(j jhardAsset) HardAsset {
			return HardAsset{
				Name:        j.Name,
				Type:        j.Type,
				Unit:        j.Unit,
				Quantity:    Q(j.Quantity),
				AverageCost: M(j.AverageCost, currency),
				SpotPrice:   M(j.SpotPrice, currency),
				LastUpdated: parseTimestamp(j.LastUpdated),
			}
		}
		// Category membership is whatever sequence the asset was filed in,
		// not re-derived from its type tag.
		for _, j := range doc.HardAssets.PreciousMetals {
			l.metals = append(l.metals, decode(j))
		}
		for _, j := range doc.HardAssets.Other {
			l.other = append(l.other, decode(j))
		}
	}
	return l, nil
}

// EncodeLedger writes the whole ledger document, indented for human eyes and
// diff-friendly storage.
func EncodeLedger(w io.Writer, l *Ledger) error {
	encode := func(a HardAsset) jhardAsset {
		return jhardAsset{
			Name:        a.Name,
			Type:        a.Type,
			Unit:        a.Unit,
			Quantity:    a.Quantity.value,
			AverageCost: a.AverageCost.value,
			SpotPrice:   a.SpotPrice.value,
			LastUpdated: formatTimestamp(a.LastUpdated),
		}
	}

	var doc jledger
	doc.Crypto = &struct {
		Holdings []jcrypto `json:"holdings"`
	}{Holdings: make([]jcrypto, 0, len(l.crypto))}
	for _, h := range l.crypto {
		doc.Crypto.Holdings = append(doc.Crypto.Holdings, jcrypto{
			Symbol:       h.ID,
			Name:         h.Name,
			Quantity:     h.Quantity.value,
			AverageCost:  h.AverageCost.value,
			CurrentPrice: h.CurrentPrice.value,
			LastUpdated:  formatTimestamp(h.LastUpdated),
		})
	}

	doc.HardAssets = &struct {
		PreciousMetals []jhardAsset `json:"precious_metals"`
		Other          []jhardAsset `json:"other"`
	}{
		PreciousMetals: make([]jhardAsset, 0, len(l.metals)),
		Other:          make([]jhardAsset, 0, len(l.other)),
	}
	for _, a := range l.metals {
		doc.HardAssets.PreciousMetals = append(doc.HardAssets.PreciousMetals, encode(a))
	}
	for _, a := range l.other {
		doc.HardAssets.Other = append(doc.HardAssets.Other, encode(a))
	}

	doc.Cash = &struct {
		Balance  decimal.Decimal `json:"balance"`
		Currency string          `json:"currency"`
	}{Balance: l.cash.value, Currency: l.Currency()}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode ledger document: %w", err)
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("cannot write ledger document: %w", err)
	}
	return nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
