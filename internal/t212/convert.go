package t212

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomasper/t212flux/internal/model"
)

// ValidationError reports the first raw record that failed validation.
// The whole batch is rejected; there is no partial success.
type ValidationError struct {
	Index int    // position of the record in the response array
	Field string // canonical (snake_case) field name
	Cause error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("position %d: invalid field %q: %v", e.Index, e.Field, e.Cause)
	}
	return fmt.Sprintf("position %d: missing required field %q", e.Index, e.Field)
}

func (e *ValidationError) Unwrap() error { return e.Cause }

var errNotFinite = errors.New("value must be finite")

// NormalizeTicker strips everything after the first underscore and
// uppercases the rest: "AAPL_US_EQ" -> "AAPL". A symbol without an
// underscore passes through uppercased unchanged.
func NormalizeTicker(raw string) string {
	symbol, _, _ := strings.Cut(raw, "_")
	return strings.ToUpper(symbol)
}

// ToPositions validates and normalizes a full batch of raw records.
// The first invalid record fails the whole batch with a *ValidationError.
func ToPositions(raw []APIPosition) ([]model.Position, error) {
	positions := make([]model.Position, 0, len(raw))
	for i := range raw {
		pos, err := raw[i].toModel(i)
		if err != nil {
			return nil, err
		}
		positions = append(positions, pos)
	}
	return positions, nil
}

// toModel validates one raw record and converts it to a model.Position.
func (p *APIPosition) toModel(index int) (model.Position, error) {
	var pos model.Position

	ticker, err := requireString(index, "ticker", p.Ticker)
	if err != nil {
		return pos, err
	}
	frontend, err := requireString(index, "frontend", p.Frontend)
	if err != nil {
		return pos, err
	}

	quantity, err := requireFloat(index, "quantity", p.Quantity)
	if err != nil {
		return pos, err
	}
	averagePrice, err := requireFloat(index, "average_price", p.AveragePrice)
	if err != nil {
		return pos, err
	}
	currentPrice, err := requireFloat(index, "current_price", p.CurrentPrice)
	if err != nil {
		return pos, err
	}
	profit, err := requireFloat(index, "profit", p.Profit)
	if err != nil {
		return pos, err
	}
	maxBuy, err := requireFloat(index, "max_buy", p.MaxBuy)
	if err != nil {
		return pos, err
	}
	maxSell, err := requireFloat(index, "max_sell", p.MaxSell)
	if err != nil {
		return pos, err
	}
	pieQuantity, err := requireFloat(index, "pie_quantity", p.PieQuantity)
	if err != nil {
		return pos, err
	}

	if p.InitialFillDate == nil {
		return pos, &ValidationError{Index: index, Field: "initial_fill_date"}
	}
	fillDate, err := time.Parse(time.RFC3339, *p.InitialFillDate)
	if err != nil {
		return pos, &ValidationError{Index: index, Field: "initial_fill_date", Cause: err}
	}

	if p.ForexMovementImpact != nil && !isFinite(*p.ForexMovementImpact) {
		return pos, &ValidationError{Index: index, Field: "forex_movement_impact", Cause: errNotFinite}
	}

	return model.Position{
		Ticker:              NormalizeTicker(ticker),
		Quantity:            quantity,
		AveragePrice:        averagePrice,
		CurrentPrice:        currentPrice,
		Profit:              profit,
		ForexMovementImpact: p.ForexMovementImpact,
		InitialFillDate:     fillDate,
		Frontend:            frontend,
		MaxBuy:              maxBuy,
		MaxSell:             maxSell,
		PieQuantity:         pieQuantity,
	}, nil
}

func requireString(index int, field string, v *string) (string, error) {
	if v == nil {
		return "", &ValidationError{Index: index, Field: field}
	}
	return *v, nil
}

func requireFloat(index int, field string, v *float64) (float64, error) {
	if v == nil {
		return 0, &ValidationError{Index: index, Field: field}
	}
	if !isFinite(*v) {
		return 0, &ValidationError{Index: index, Field: field, Cause: errNotFinite}
	}
	return *v, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
