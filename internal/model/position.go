package model

import "time"

// Position is one open holding in a brokerage account.
//
// A Position is built once from a validated API record and treated as
// read-only afterwards; derived values are computed on demand, never
// stored.
type Position struct {
	Ticker       string  // Normalized symbol (e.g. "AAPL")
	Quantity     float64 // Share count, may be fractional
	AveragePrice float64 // Average fill price per share
	CurrentPrice float64 // Last known price per share
	Profit       float64 // Realized/unrealized P&L

	// ForexMovementImpact is the P&L attributable to currency movement.
	// Nil when the instrument has no currency exposure.
	ForexMovementImpact *float64

	InitialFillDate time.Time // First fill
	Frontend        string    // Originating client/channel (e.g. "SYSTEM")
	MaxBuy          float64   // Buy limit at snapshot time
	MaxSell         float64   // Sell limit at snapshot time
	PieQuantity     float64   // Quantity allocated to a pie
}

// CurrentValue returns the market value of the holding. It is recomputed
// from CurrentPrice and Quantity on every call and never cached.
func (p Position) CurrentValue() float64 {
	return p.CurrentPrice * p.Quantity
}
