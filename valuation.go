package tally

import "sort"

// Category enumerates the four top-level asset categories, in the fixed
// order used to break allocation ties.
type Category int

const (
	CategoryEquities Category = iota
	CategoryCash
	CategoryCrypto
	CategoryHardAssets
)

func (c Category) String() string {
	switch c {
	case CategoryEquities:
		return "Equities"
	case CategoryCash:
		return "Cash"
	case CategoryCrypto:
		return "Cryptocurrency"
	case CategoryHardAssets:
		return "Hard Assets"
	default:
		return "unknown"
	}
}

// AllocationRow is one line of the valuation breakdown: a category with a
// nonzero subtotal and its share of the grand total.
type AllocationRow struct {
	Category Category
	Holdings int     // number of holdings in the category
	Value    Money   // category subtotal
	Weight   Percent // share of grand total, in percentage points
}

// Valuation is a snapshot of the portfolio's worth. It is wholly derived:
// recomputed in full on every call to NewValuation and never persisted.
type Valuation struct {
	Crypto         Money
	PreciousMetals Money
	OtherAssets    Money
	HardAssets     Money // precious metals + other
	Cash           Money
	Equities       Money
	Total          Money

	// Breakdown holds one row per category with a positive subtotal, sorted
	// by weight descending. It is empty when the portfolio is empty, so
	// callers must render an "empty portfolio" state instead of dividing.
	Breakdown []AllocationRow
}

// NewValuation values the ledger against the last fetched prices and the
// given equities snapshot. A nil snapshot (source unavailable or errored)
// contributes a zero equities subtotal; the rest of the portfolio is still
// valued.
func NewValuation(l *Ledger, equities *EquitiesSnapshot) *Valuation {
	currency := l.Currency()
	zero := M(0, currency)

	v := &Valuation{
		Crypto:         zero,
		PreciousMetals: zero,
		OtherAssets:    zero,
		Cash:           l.Cash(),
		Equities:       zero,
	}

	for _, h := range l.crypto {
		v.Crypto = v.Crypto.Add(h.Value())
	}
	// Precious metals convert their quantity to troy ounces before pricing;
	// "other" hard assets are valued per stated unit. See HardAsset.Value.
	for _, a := range l.metals {
		v.PreciousMetals = v.PreciousMetals.Add(a.Value())
	}
	for _, a := range l.other {
		v.OtherAssets = v.OtherAssets.Add(a.Value())
	}
	v.HardAssets = v.PreciousMetals.Add(v.OtherAssets)

	equityCount := 0
	if equities != nil {
		// Relabel into the ledger currency: prices are USD-denominated and the
		// ledger currency is a display label, not an FX conversion.
		v.Equities = M(equities.TotalEquity.value, currency)
		equityCount = len(equities.Positions)
	}

	v.Total = v.Equities.Add(v.Cash).Add(v.Crypto).Add(v.HardAssets)
	if !v.Total.IsPositive() {
		return v
	}

	// Candidate rows in fixed category order, so that equal weights keep
	// this order through the stable sort below.
	candidates := []AllocationRow{
		{Category: CategoryEquities, Holdings: equityCount, Value: v.Equities},
		{Category: CategoryCash, Holdings: 1, Value: v.Cash},
		{Category: CategoryCrypto, Holdings: len(l.crypto), Value: v.Crypto},
		{Category: CategoryHardAssets, Holdings: len(l.metals) + len(l.other), Value: v.HardAssets},
	}
	total := v.Total.AsFloat()
	for _, row := range candidates {
		if !row.Value.IsPositive() {
			continue
		}
		row.Weight = Percent(row.Value.AsFloat() / total * 100)
		v.Breakdown = append(v.Breakdown, row)
	}
	sort.SliceStable(v.Breakdown, func(i, j int) bool {
		return v.Breakdown[i].Weight > v.Breakdown[j].Weight
	})
	return v
}
