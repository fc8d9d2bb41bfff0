// Package renderer turns valuation snapshots and ledger holdings into
// markdown reports for terminal display.
package renderer

import (
	"fmt"

	"github.com/tally-sh/tally"
)

// qty formats a quantity with enough digits for fractional coins and shares.
func qty(q tally.Quantity) string {
	return fmt.Sprintf("%.4f", q.AsFloat())
}

// costOrNA renders a per-unit average cost, or "N/A" when it was never
// recorded.
func costOrNA(m tally.Money) string {
	if !m.IsPositive() {
		return "N/A"
	}
	return m.String()
}

// gainCell renders a P&L cell: amount and percent when a cost basis exists,
// "N/A" otherwise. An unrecorded cost basis must never show as a 100% gain.
func gainCell(gain tally.Money, pct tally.Percent, ok bool) string {
	if !ok {
		return "N/A"
	}
	return fmt.Sprintf("%s (%s)", gain.SignedString(), pct.SignedString())
}
