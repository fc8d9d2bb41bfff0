package tally

// CryptoQuoter returns the current spot price in US dollars for a canonical
// crypto asset identifier.
type CryptoQuoter interface {
	Price(id string) (float64, error)
}

// CryptoResolver resolves a free-text symbol or name to a canonical asset
// identifier plus display name. Only the best-ranked match is returned;
// ambiguous queries silently pick the top result.
type CryptoResolver interface {
	Search(term string) (id, name string, err error)
}

// MetalQuoter returns the current spot price in US dollars per troy ounce for
// a precious-metal tag from the fixed set.
type MetalQuoter interface {
	Spot(metal string) (float64, error)
}

// EquityPosition is one normalized brokerage position.
type EquityPosition struct {
	Symbol   string
	Quantity Quantity
	Price    Money
	Equity   Money
}

// EquitiesSnapshot is the transient result of querying the brokerage: open
// positions and their total equity. It is regenerated on every read, never
// persisted.
type EquitiesSnapshot struct {
	Positions   []EquityPosition
	TotalEquity Money
}
