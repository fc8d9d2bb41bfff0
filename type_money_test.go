package tally

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.5, "USD"), "$1,234.50"},
		{M(0, "USD"), "$0.00"},
		{M(-300, "USD"), "-$300.00"},
		{M(0.5, "USD"), "$0.50"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneyCurrencyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD to EUR should panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestPercentString(t *testing.T) {
	tests := []struct {
		p          Percent
		want, sign string
	}{
		{Percent(42.26), "42.3%", "+42.3%"},
		{Percent(0), "0.0%", "-"},
		{Percent(-3.5), "-3.5%", "-3.5%"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.p.SignedString(); got != tt.sign {
			t.Errorf("SignedString() = %q, want %q", got, tt.sign)
		}
	}
}
