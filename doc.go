// Package tally provides the types and functions to maintain a personal
// multi-asset ledger and to value it against live market data. It is designed
// to be local-first: holdings are entered by the user, persisted as a single
// human-readable JSON document, and valued on demand.
//
// The core functionalities include:
//   - Ledger Store: an in-memory record of holdings across four categories
//     (cryptocurrency, precious metals, other hard assets, and cash), with
//     mutation operations that enforce the non-negative quantity invariant.
//   - Valuation Engine: a stateless computation that combines the ledger with
//     live quotes to produce per-holding values, cost basis and P&L, category
//     subtotals, and an allocation breakdown.
//   - Unit Conversion: canonicalization of physical quantities to troy ounces
//     for spot-priced commodities.
//   - Data Persistence: encoding and decoding of the ledger and configuration
//     documents with backward-compatible defaults for missing sections.
//
// Market data comes from provider subpackages (coingecko, goldapi, robinhood)
// that translate each external source into typed outcomes; a failing source
// degrades the valuation instead of corrupting it.
//
// This package serves as the foundational logic for the `tly` command-line
// tool.
package tally
