// Package assetbook tracks a personal owner's holdings across heterogeneous
// asset classes (cryptocurrencies, gold, real estate) and values them against
// a reference price sheet.
//
// The core functionalities include:
//   - Asset Model: a closed set of asset-class variants, each carrying its
//     class-specific quantity (satoshis, wei, gram weight, ...) and its own
//     pricing rule against the price sheet.
//   - Valuation Engine: overflow-safe fixed-point arithmetic turning a typed
//     quantity and a unit reference price into a market snapshot, and an
//     evaluation pipeline comparing cost basis to current value.
//   - Book Keeping: a portfolio aggregate that owns funds and assets, assigns
//     identifiers, and orchestrates bulk import, market refresh and
//     evaluation.
//   - Data Import/Export: typed decoding of the holdings and price sheet
//     documents, and JSONL export of computed market snapshots.
//
// This package serves as the foundational logic for the `abk` command-line
// tool; it accepts already-parsed structured data and never reads files
// itself.
package assetbook
