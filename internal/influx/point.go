package influx

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/tomasper/t212flux/internal/model"
)

// Measurement is the measurement name for position snapshots.
const Measurement = "stock_price"

// NewPoint converts a position into one time-series point. The caller
// supplies the timestamp so that every point of a batch shares the same
// instant; a zero ts falls back to the current time.
func NewPoint(p model.Position, ts time.Time) *write.Point {
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	point := write.NewPointWithMeasurement(Measurement).
		AddTag("ticker", p.Ticker).
		AddField("current_price", p.CurrentPrice).
		AddField("average_price", p.AveragePrice).
		AddField("quantity", p.Quantity).
		AddField("profit", p.Profit).
		AddField("current_value", p.CurrentValue()).
		SetTime(ts)

	// Line protocol has no typed null: an absent forex impact is omitted
	// from the field set rather than coerced to zero.
	if p.ForexMovementImpact != nil {
		point.AddField("forex_movement_impact", *p.ForexMovementImpact)
	}

	return point
}
