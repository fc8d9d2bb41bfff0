package tally

import (
	"errors"
	"strings"
	"time"
)

// ErrInvalidSelection is returned when a holding is addressed by a list
// position that does not exist.
var ErrInvalidSelection = errors.New("invalid selection")

// preciousMetals is the fixed set of asset-type tags that are quoted per troy
// ounce by the spot price providers. Every other tag files under "other".
var preciousMetals = map[string]bool{
	"gold":      true,
	"silver":    true,
	"platinum":  true,
	"palladium": true,
}

// IsPreciousMetal reports whether the asset-type tag belongs to the fixed
// precious-metal set.
func IsPreciousMetal(tag string) bool {
	return preciousMetals[strings.ToLower(tag)]
}

// MetalTags returns the fixed precious-metal set in display order.
func MetalTags() []string {
	return []string{"gold", "silver", "platinum", "palladium"}
}

// CryptoHolding is a recorded quantity of one cryptocurrency.
type CryptoHolding struct {
	ID           string // canonical lowercase asset key, unique in the crypto category
	Name         string
	Quantity     Quantity
	AverageCost  Money // per unit; zero means cost basis was never recorded
	CurrentPrice Money // per unit; last successfully fetched, zero otherwise
	LastUpdated  time.Time
}

// Value returns the current market value of the holding.
func (h CryptoHolding) Value() Money { return h.CurrentPrice.Mul(h.Quantity) }

// CostBasis returns quantity times average cost. ok is false when the average
// cost was never recorded, in which case no P&L should be derived from it.
func (h CryptoHolding) CostBasis() (basis Money, ok bool) {
	if !h.AverageCost.IsPositive() {
		return Money{}, false
	}
	return h.AverageCost.Mul(h.Quantity), true
}

// UnrealizedGain returns the holding's P&L against its cost basis.
// ok is false when no cost basis was recorded; reporting a numeric gain in
// that case would show a misleading 100% figure.
func (h CryptoHolding) UnrealizedGain() (gain Money, pct Percent, ok bool) {
	basis, ok := h.CostBasis()
	if !ok {
		return Money{}, 0, false
	}
	gain = h.Value().Sub(basis)
	pct = Percent(gain.AsFloat() / basis.AsFloat() * 100)
	return gain, pct, true
}

// HardAsset is a recorded quantity of a physical asset: a precious metal or
// any other collectible or commodity.
type HardAsset struct {
	Name        string
	Type        string // a precious-metal tag, or anything else for "other"
	Unit        string // unit of measure the quantity is expressed in
	Quantity    Quantity
	AverageCost Money // per unit
	SpotPrice   Money // per troy ounce for precious metals, per Unit otherwise
	LastUpdated time.Time
}

// IsPreciousMetal reports whether the asset belongs to the spot-priced
// precious-metal category.
func (a HardAsset) IsPreciousMetal() bool { return IsPreciousMetal(a.Type) }

// Value returns the current market value of the asset.
//
// Precious metals are quoted per troy ounce, so their quantity is
// canonicalized with ToOunces first. Other hard assets are valued directly
// per stated unit: their market price is user-entered in that same unit, so
// no conversion applies.
func (a HardAsset) Value() Money {
	qty := a.Quantity
	if a.IsPreciousMetal() {
		qty = ToOunces(qty, a.Unit)
	}
	return a.SpotPrice.Mul(qty)
}

// CostBasis returns quantity times average cost, in the stated unit.
// ok is false when the average cost was never recorded.
func (a HardAsset) CostBasis() (basis Money, ok bool) {
	if !a.AverageCost.IsPositive() {
		return Money{}, false
	}
	return a.AverageCost.Mul(a.Quantity), true
}

// UnrealizedGain returns the asset's P&L against its cost basis.
func (a HardAsset) UnrealizedGain() (gain Money, pct Percent, ok bool) {
	basis, ok := a.CostBasis()
	if !ok {
		return Money{}, 0, false
	}
	gain = a.Value().Sub(basis)
	pct = Percent(gain.AsFloat() / basis.AsFloat() * 100)
	return gain, pct, true
}

// Ledger holds the user's positions across the four categories: crypto,
// precious metals, other hard assets, and cash.
//
// It is a single in-process mutable structure for one interactive user;
// there is no concurrent-access protection.
type Ledger struct {
	crypto []CryptoHolding
	metals []HardAsset
	other  []HardAsset
	cash   Money
}

// NewLedger creates an empty ledger with a zero USD cash balance.
func NewLedger() *Ledger {
	return &Ledger{cash: M(0, "USD")}
}

// CryptoHoldings returns the crypto category in encounter order.
func (l *Ledger) CryptoHoldings() []CryptoHolding { return l.crypto }

// PreciousMetals returns the precious-metal sequence in encounter order.
func (l *Ledger) PreciousMetals() []HardAsset { return l.metals }

// OtherAssets returns the "other" hard-asset sequence in encounter order.
func (l *Ledger) OtherAssets() []HardAsset { return l.other }

// HardAssets returns both hard-asset sequences, precious metals first.
func (l *Ledger) HardAssets() []HardAsset {
	all := make([]HardAsset, 0, len(l.metals)+len(l.other))
	all = append(all, l.metals...)
	all = append(all, l.other...)
	return all
}

// Cash returns the current cash balance.
func (l *Ledger) Cash() Money { return l.cash }

// Currency returns the ledger's display currency label, carried by the cash
// position. There is no FX conversion behind it.
func (l *Ledger) Currency() string {
	if c := l.cash.Currency(); c != "" {
		return c
	}
	return "USD"
}

// AppendCrypto appends a holding to the crypto category.
func (l *Ledger) AppendCrypto(h CryptoHolding) {
	l.crypto = append(l.crypto, h)
}

// AppendHardAsset files the asset under precious metals or "other", based on
// its asset-type tag. Category membership is decided here, once; there is no
// cross-category move.
func (l *Ledger) AppendHardAsset(a HardAsset) {
	if a.IsPreciousMetal() {
		l.metals = append(l.metals, a)
	} else {
		l.other = append(l.other, a)
	}
}

// RemoveCrypto deletes the holding at the given 0-based position and returns
// it. Out-of-range positions return ErrInvalidSelection and leave the ledger
// unchanged.
func (l *Ledger) RemoveCrypto(i int) (CryptoHolding, error) {
	if i < 0 || i >= len(l.crypto) {
		return CryptoHolding{}, ErrInvalidSelection
	}
	removed := l.crypto[i]
	l.crypto = append(l.crypto[:i], l.crypto[i+1:]...)
	return removed, nil
}

// RemoveHardAsset deletes the asset at the given 0-based position in the
// combined hard-asset list (precious metals first, then "other") and returns
// it. Out-of-range positions return ErrInvalidSelection and leave the ledger
// unchanged.
func (l *Ledger) RemoveHardAsset(i int) (HardAsset, error) {
	if i < 0 || i >= len(l.metals)+len(l.other) {
		return HardAsset{}, ErrInvalidSelection
	}
	if i < len(l.metals) {
		removed := l.metals[i]
		l.metals = append(l.metals[:i], l.metals[i+1:]...)
		return removed, nil
	}
	i -= len(l.metals)
	removed := l.other[i]
	l.other = append(l.other[:i], l.other[i+1:]...)
	return removed, nil
}

// FindCrypto locates a crypto holding by case-insensitive match on its
// identifier or display name, returning its position.
func (l *Ledger) FindCrypto(term string) (i int, ok bool) {
	s := strings.ToLower(strings.TrimSpace(term))
	for i, h := range l.crypto {
		if strings.ToLower(h.ID) == s || strings.ToLower(h.Name) == s {
			return i, true
		}
	}
	return 0, false
}
