// Package influx converts positions into time-series points and writes
// them to InfluxDB.
//
// Every point uses the stock_price measurement with a single ticker tag
// and six numeric fields. Writes are synchronous: one batch per run, no
// chunking, no retries, no deduplication.
package influx
