package tally

import (
	"math"
	"testing"
)

// fullLedger builds a portfolio with every category populated.
func fullLedger() *Ledger {
	l := NewLedger()
	l.AppendCrypto(CryptoHolding{ID: "bitcoin", Name: "Bitcoin", Quantity: Q(0.5), CurrentPrice: M(60000, "USD")})
	l.AppendCrypto(CryptoHolding{ID: "ethereum", Name: "Ethereum", Quantity: Q(10), CurrentPrice: M(3000, "USD")})
	l.AppendHardAsset(HardAsset{Name: "Gold", Type: "gold", Unit: "oz", Quantity: Q(2), SpotPrice: M(2000, "USD")})
	l.AppendHardAsset(HardAsset{Name: "Land", Type: "land", Unit: "acres", Quantity: Q(1), SpotPrice: M(6000, "USD")})
	l.AdjustCash(M(10000, "USD"), M(0, "USD"))
	return l
}

func snapshot(total float64, n int) *EquitiesSnapshot {
	s := &EquitiesSnapshot{TotalEquity: M(total, "USD")}
	for i := 0; i < n; i++ {
		s.Positions = append(s.Positions, EquityPosition{})
	}
	return s
}

func TestNewValuationTotals(t *testing.T) {
	v := NewValuation(fullLedger(), snapshot(20000, 3))

	if want := M(60000, "USD"); !v.Crypto.Equal(want) {
		t.Errorf("crypto = %s, want %s", v.Crypto, want)
	}
	if want := M(4000, "USD"); !v.PreciousMetals.Equal(want) {
		t.Errorf("metals = %s, want %s", v.PreciousMetals, want)
	}
	if want := M(6000, "USD"); !v.OtherAssets.Equal(want) {
		t.Errorf("other = %s, want %s", v.OtherAssets, want)
	}
	if want := M(10000, "USD"); !v.HardAssets.Equal(want) {
		t.Errorf("hard assets = %s, want %s", v.HardAssets, want)
	}

	// the grand total is exactly the sum of the four category subtotals
	sum := v.Equities.Add(v.Cash).Add(v.Crypto).Add(v.HardAssets)
	if !v.Total.Equal(sum) {
		t.Errorf("total = %s, subtotals sum to %s", v.Total, sum)
	}
	if want := M(100000, "USD"); !v.Total.Equal(want) {
		t.Errorf("total = %s, want %s", v.Total, want)
	}
}

func TestNewValuationBreakdown(t *testing.T) {
	v := NewValuation(fullLedger(), snapshot(20000, 3))

	wantOrder := []Category{CategoryCrypto, CategoryEquities, CategoryCash, CategoryHardAssets}
	if len(v.Breakdown) != len(wantOrder) {
		t.Fatalf("got %d rows, want %d", len(v.Breakdown), len(wantOrder))
	}
	sum := 0.0
	for i, row := range v.Breakdown {
		if row.Category != wantOrder[i] {
			t.Errorf("row %d: got %s, want %s", i, row.Category, wantOrder[i])
		}
		sum += float64(row.Weight)
	}
	// weights of the included rows sum to 100%
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("weights sum to %f, want 100", sum)
	}

	if want := Percent(60); !v.Breakdown[0].Weight.Equal(want) {
		t.Errorf("crypto weight = %s, want %s", v.Breakdown[0].Weight, want)
	}
	if v.Breakdown[0].Holdings != 2 {
		t.Errorf("crypto holdings = %d, want 2", v.Breakdown[0].Holdings)
	}
	if v.Breakdown[1].Holdings != 3 {
		t.Errorf("equities holdings = %d, want 3", v.Breakdown[1].Holdings)
	}
}

func TestNewValuationSkipsEmptyCategories(t *testing.T) {
	l := NewLedger()
	l.AppendCrypto(CryptoHolding{ID: "bitcoin", Name: "Bitcoin", Quantity: Q(1), CurrentPrice: M(50000, "USD")})

	v := NewValuation(l, nil)
	if len(v.Breakdown) != 1 {
		t.Fatalf("got %d rows, want 1", len(v.Breakdown))
	}
	row := v.Breakdown[0]
	if row.Category != CategoryCrypto {
		t.Errorf("category = %s, want Cryptocurrency", row.Category)
	}
	// a single category owns the whole portfolio
	if want := Percent(100); !row.Weight.Equal(want) {
		t.Errorf("weight = %s, want %s", row.Weight, want)
	}
}

func TestNewValuationEmptyPortfolio(t *testing.T) {
	v := NewValuation(NewLedger(), nil)
	if !v.Total.IsZero() {
		t.Errorf("total = %s, want zero", v.Total)
	}
	// no rows rather than a division by zero
	if len(v.Breakdown) != 0 {
		t.Errorf("got %d rows, want none", len(v.Breakdown))
	}
}

func TestNewValuationNilSnapshot(t *testing.T) {
	v := NewValuation(fullLedger(), nil)
	if !v.Equities.IsZero() {
		t.Errorf("equities = %s, want zero", v.Equities)
	}
	// the rest of the portfolio is still valued
	if want := M(80000, "USD"); !v.Total.Equal(want) {
		t.Errorf("total = %s, want %s", v.Total, want)
	}
	for _, row := range v.Breakdown {
		if row.Category == CategoryEquities {
			t.Error("an unavailable source must not appear in the breakdown")
		}
	}
}

func TestNewValuationEqualWeightsKeepCategoryOrder(t *testing.T) {
	l := NewLedger()
	l.AppendCrypto(CryptoHolding{ID: "bitcoin", Name: "Bitcoin", Quantity: Q(1), CurrentPrice: M(5000, "USD")})
	l.AdjustCash(M(5000, "USD"), M(0, "USD"))

	v := NewValuation(l, nil)
	if len(v.Breakdown) != 2 {
		t.Fatalf("got %d rows, want 2", len(v.Breakdown))
	}
	// cash comes before crypto in the fixed category order
	if v.Breakdown[0].Category != CategoryCash || v.Breakdown[1].Category != CategoryCrypto {
		t.Errorf("tie order: got %s, %s", v.Breakdown[0].Category, v.Breakdown[1].Category)
	}
}

func TestNewValuationMetalInGrams(t *testing.T) {
	l := NewLedger()
	// 100 g of gold at $2000/oz is about $6430, not $200000
	l.AppendHardAsset(HardAsset{Name: "Gold", Type: "gold", Unit: "g", Quantity: Q(100), SpotPrice: M(2000, "USD")})

	v := NewValuation(l, nil)
	got := v.PreciousMetals.AsFloat()
	if want := 100 / GramsPerTroyOunce * 2000; math.Abs(got-want) > 0.01 {
		t.Errorf("metals = %f, want %f", got, want)
	}
}
