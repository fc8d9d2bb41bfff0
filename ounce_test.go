package tally

import "testing"

func TestToOunces(t *testing.T) {
	tests := []struct {
		name     string
		quantity Quantity
		unit     string
		want     Quantity
	}{
		{"grams to ounces", Q(31.1034768), "g", Q(1)},
		{"gram spelled out", Q(62.2069536), "grams", Q(2)},
		{"case insensitive", Q(31.1034768), "Grams", Q(1)},
		{"already ounces", Q(5), "oz", Q(5)},
		{"unknown unit passes through", Q(3), "kg", Q(3)},
		{"zero grams", Q(0), "g", Q(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToOunces(tt.quantity, tt.unit)
			if !got.Equal(tt.want) {
				t.Errorf("ToOunces(%s, %q) = %s, want %s", tt.quantity, tt.unit, got, tt.want)
			}
		})
	}
}

// Converting twice must not shrink the quantity again: the result of a
// conversion is in ounces, and ounce units are passed through unchanged.
func TestToOuncesIdempotent(t *testing.T) {
	once := ToOunces(Q(100), "g")
	twice := ToOunces(once, "oz")
	if !once.Equal(twice) {
		t.Errorf("second conversion changed the quantity: %s != %s", once, twice)
	}
}
