// Package config loads and validates exporter configuration.
//
// Resolution order: optional YAML file (with ${VAR} expansion), then
// environment variables (T212_* and INFLUXDB_*), then defaults. Required
// values that were never provided hold the NOT_SET sentinel and fail
// validation before first use.
package config
