package t212

// APIPosition is one open position as returned by the Trading212 API.
//
// Fields are pointers so validation can tell a missing key apart from a
// zero value; fxPpl is the only field that may legitimately stay nil.
type APIPosition struct {
	Ticker              *string  `json:"ticker"`
	Quantity            *float64 `json:"quantity"`
	AveragePrice        *float64 `json:"averagePrice"`
	CurrentPrice        *float64 `json:"currentPrice"`
	Profit              *float64 `json:"ppl"`
	ForexMovementImpact *float64 `json:"fxPpl"`
	InitialFillDate     *string  `json:"initialFillDate"`
	Frontend            *string  `json:"frontend"`
	MaxBuy              *float64 `json:"maxBuy"`
	MaxSell             *float64 `json:"maxSell"`
	PieQuantity         *float64 `json:"pieQuantity"`
}
