package tally

import (
	"errors"
	"fmt"
	"time"
)

// This file contains the state-transition operations over the ledger. Every
// validation failure is checked before any state change, so a failing
// operation always leaves the ledger exactly as it was.

// ErrConflictingAdjustment is returned when more than one of set, add, or
// subtract is requested in a single quantity adjustment.
var ErrConflictingAdjustment = errors.New("use only one of set, add, or subtract")

// ErrNegativeQuantity is returned when an adjustment would drive a holding's
// quantity negative.
var ErrNegativeQuantity = errors.New("quantity cannot be negative")

// AddCrypto resolves the free-text term to a canonical asset, fetches its
// current price best-effort, and appends the new holding.
//
// An unresolved term is an error and performs no ledger change. A price fetch
// failure is not: the holding is still added with a zero price, to be
// refreshed later.
func (l *Ledger) AddCrypto(resolver CryptoResolver, quoter CryptoQuoter, term string, quantity Quantity, avgCost Money, now time.Time) (CryptoHolding, error) {
	if quantity.IsNegative() {
		return CryptoHolding{}, ErrNegativeQuantity
	}
	id, name, err := resolver.Search(term)
	if err != nil {
		return CryptoHolding{}, fmt.Errorf("could not find cryptocurrency %q: %w", term, err)
	}

	price := M(0, l.Currency())
	if p, err := quoter.Price(id); err == nil {
		price = M(p, l.Currency())
	}

	h := CryptoHolding{
		ID:           id,
		Name:         name,
		Quantity:     quantity,
		AverageCost:  avgCost,
		CurrentPrice: price,
		LastUpdated:  now,
	}
	l.AppendCrypto(h)
	return h, nil
}

// QuantityAdjustment describes one quantity mutation. Exactly one of the
// three fields must be set.
type QuantityAdjustment struct {
	Set      *Quantity
	Add      *Quantity
	Subtract *Quantity
}

func (adj QuantityAdjustment) apply(current Quantity) (Quantity, error) {
	n := 0
	for _, p := range []*Quantity{adj.Set, adj.Add, adj.Subtract} {
		if p != nil {
			n++
		}
	}
	if n != 1 {
		return Quantity{}, ErrConflictingAdjustment
	}
	switch {
	case adj.Set != nil:
		return *adj.Set, nil
	case adj.Add != nil:
		return current.Add(*adj.Add), nil
	default:
		return current.Sub(*adj.Subtract), nil
	}
}

// AdjustCryptoQuantity applies a quantity adjustment to the holding at the
// given 0-based position. The resulting quantity must be non-negative, and
// exactly one operation may be requested; otherwise the holding is left
// untouched. On success the holding's timestamp is refreshed.
func (l *Ledger) AdjustCryptoQuantity(i int, adj QuantityAdjustment, now time.Time) (CryptoHolding, error) {
	if i < 0 || i >= len(l.crypto) {
		return CryptoHolding{}, ErrInvalidSelection
	}
	newQty, err := adj.apply(l.crypto[i].Quantity)
	if err != nil {
		return CryptoHolding{}, err
	}
	if newQty.IsNegative() {
		return CryptoHolding{}, ErrNegativeQuantity
	}
	l.crypto[i].Quantity = newQty
	l.crypto[i].LastUpdated = now
	return l.crypto[i], nil
}

// UpdateCryptoPrices refetches the spot price of every crypto holding,
// strictly sequentially. One holding's failure never aborts the rest of the
// pass: the failing holding keeps its previous price and timestamp and is not
// counted as updated. The joined per-holding errors are returned for
// reporting.
func (l *Ledger) UpdateCryptoPrices(quoter CryptoQuoter, now time.Time) (updated int, errs error) {
	for i := range l.crypto {
		p, err := quoter.Price(l.crypto[i].ID)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", l.crypto[i].Name, err))
			continue
		}
		l.crypto[i].CurrentPrice = M(p, l.Currency())
		l.crypto[i].LastUpdated = now
		updated++
	}
	return updated, errs
}

// AddHardAsset appends a hard asset, fetching a spot price first when the
// asset-type tag is in the precious-metal set. When the provider is
// unconfigured or fails, the caller-supplied manualPrice is used instead, so
// the operation always succeeds once inputs are well-formed. The returned
// fetched flag tells whether the spot price came from the provider.
func (l *Ledger) AddHardAsset(quoter MetalQuoter, a HardAsset, manualPrice Money, now time.Time) (HardAsset, bool, error) {
	if a.Quantity.IsNegative() {
		return HardAsset{}, false, ErrNegativeQuantity
	}
	fetched := false
	a.SpotPrice = manualPrice
	if a.IsPreciousMetal() {
		if p, err := quoter.Spot(a.Type); err == nil {
			a.SpotPrice = M(p, l.Currency())
			fetched = true
		}
	}
	a.LastUpdated = now
	l.AppendHardAsset(a)
	return a, fetched, nil
}

// UpdateMetalPrices refetches the spot price of every precious-metal holding,
// strictly sequentially. The "other" hard assets are never touched: their
// market value is user-entered. Holdings whose fetch fails keep their
// previous price and timestamp, and are not counted as updated.
func (l *Ledger) UpdateMetalPrices(quoter MetalQuoter, now time.Time) (updated int, errs error) {
	for i := range l.metals {
		p, err := quoter.Spot(l.metals[i].Type)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("%s: %w", l.metals[i].Name, err))
			continue
		}
		l.metals[i].SpotPrice = M(p, l.Currency())
		l.metals[i].LastUpdated = now
		updated++
	}
	return updated, errs
}

// AdjustCash nets the add and subtract deltas into the cash balance and
// returns the resulting balance. Supplying both is legal. Unlike holding
// quantities, cash has no non-negativity floor: an overdrawn balance is the
// user's business to represent.
func (l *Ledger) AdjustCash(add, subtract Money) Money {
	l.cash = l.cash.Add(add).Sub(subtract)
	return l.cash
}
