package tally

import "strings"

// GramsPerTroyOunce is the conversion factor between grams and troy ounces,
// the canonical unit for spot-priced commodities.
const GramsPerTroyOunce = 31.1034768

// ToOunces converts a quantity expressed in the given unit to troy ounces.
//
// Only the gram spellings ("g", "gram", "grams", case-insensitive) are
// converted. Every other unit, including "oz" and unrecognized strings, is
// returned unchanged: non-gram units are assumed to already be
// ounce-equivalent. As a consequence the conversion is idempotent: applying
// it to an already-canonical quantity is a no-op.
func ToOunces(quantity Quantity, unit string) Quantity {
	switch strings.ToLower(unit) {
	case "g", "gram", "grams":
		return quantity.Div(Q(GramsPerTroyOunce))
	}
	return quantity
}
