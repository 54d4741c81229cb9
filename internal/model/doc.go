// Package model defines the canonical domain types shared across packages.
//
// Conventions:
//   - Prices and quantities: float64 in account currency, may be fractional
//   - Timestamps: time.Time, always timezone-aware
//   - Tickers: uppercase symbol with any exchange suffix stripped
package model
