// Package exporter sequences one export run: fetch the open positions,
// stamp them with a single shared batch timestamp, and write them to
// InfluxDB as one synchronous batch.
//
// A run has no retries and no resumption; any error is fatal and the
// next invocation starts from scratch.
package exporter
