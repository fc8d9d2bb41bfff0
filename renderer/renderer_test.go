package renderer

import (
	"strings"
	"testing"

	"github.com/tally-sh/tally"
)

func TestSummaryMarkdown(t *testing.T) {
	l := tally.NewLedger()
	l.AppendCrypto(tally.CryptoHolding{ID: "bitcoin", Name: "Bitcoin", Quantity: tally.Q(1), CurrentPrice: tally.M(60000, "USD")})
	l.AdjustCash(tally.M(40000, "USD"), tally.M(0, "USD"))

	got := SummaryMarkdown(tally.NewValuation(l, nil))
	for _, want := range []string{
		"# Portfolio Overview",
		"Asset Type", "Cryptocurrency", "60.0%", "Cash", "40.0%",
		"TOTAL", "$100,000.00", "100.0%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary misses %q:\n%s", want, got)
		}
	}
	// heaviest allocation first
	if strings.Index(got, "Cryptocurrency") > strings.Index(got, "Cash") {
		t.Errorf("rows out of order:\n%s", got)
	}
}

func TestSummaryMarkdownEmptyPortfolio(t *testing.T) {
	got := SummaryMarkdown(tally.NewValuation(tally.NewLedger(), nil))
	if !strings.Contains(got, "No portfolio data found") {
		t.Errorf("empty portfolio guidance missing:\n%s", got)
	}
	if strings.Contains(got, "TOTAL") {
		t.Errorf("empty portfolio must not render a table:\n%s", got)
	}
}

func TestCryptoMarkdownCostBasisToggle(t *testing.T) {
	holdings := []tally.CryptoHolding{{
		ID: "bitcoin", Name: "Bitcoin",
		Quantity:     tally.Q(0.5),
		AverageCost:  tally.M(20000, "USD"),
		CurrentPrice: tally.M(60000, "USD"),
	}}

	with := CryptoMarkdown(holdings, true)
	for _, want := range []string{"Avg Cost", "P&L", "+$20,000.00", "+200.0%"} {
		if !strings.Contains(with, want) {
			t.Errorf("table misses %q:\n%s", want, with)
		}
	}

	without := CryptoMarkdown(holdings, false)
	for _, banned := range []string{"Avg Cost", "P&L"} {
		if strings.Contains(without, banned) {
			t.Errorf("table should hide %q:\n%s", banned, without)
		}
	}
}

// An unrecorded cost basis shows as N/A, never as a fabricated gain.
func TestCryptoMarkdownUnknownCostBasis(t *testing.T) {
	holdings := []tally.CryptoHolding{{
		ID: "bitcoin", Name: "Bitcoin",
		Quantity:     tally.Q(1),
		CurrentPrice: tally.M(60000, "USD"),
	}}
	got := CryptoMarkdown(holdings, true)
	if !strings.Contains(got, "N/A") {
		t.Errorf("missing N/A cells:\n%s", got)
	}
	if strings.Contains(got, "100.0%") {
		t.Errorf("must not show a 100%% gain for an unknown basis:\n%s", got)
	}
}

func TestHardAssetsMarkdown(t *testing.T) {
	assets := []tally.HardAsset{
		{Name: "Gold", Type: "gold", Unit: "oz", Quantity: tally.Q(2), SpotPrice: tally.M(2000, "USD")},
		{Name: "Land", Type: "land", Unit: "acres", Quantity: tally.Q(3), SpotPrice: tally.M(10000, "USD")},
	}
	got := HardAssetsMarkdown(assets, false)
	for _, want := range []string{"Gold", "oz", "$4,000.00", "Land", "acres", "$30,000.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("table misses %q:\n%s", want, got)
		}
	}
}

func TestEquitiesMarkdown(t *testing.T) {
	s := &tally.EquitiesSnapshot{TotalEquity: tally.M(2000, "USD")}
	s.Positions = append(s.Positions, tally.EquityPosition{
		Symbol: "AAPL", Quantity: tally.Q(10), Price: tally.M(200, "USD"), Equity: tally.M(2000, "USD"),
	})

	got := EquitiesMarkdown(s)
	for _, want := range []string{"AAPL", "10.0000", "$200.00", "TOTAL", "$2,000.00"} {
		if !strings.Contains(got, want) {
			t.Errorf("table misses %q:\n%s", want, got)
		}
	}

	if got := EquitiesMarkdown(nil); !strings.Contains(got, "No open stock positions found.") {
		t.Errorf("nil snapshot:\n%s", got)
	}
}
