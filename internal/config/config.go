package config

import "time"

// ExporterConfig is the root configuration for one exporter run.
type ExporterConfig struct {
	T212     T212Config     `yaml:"t212"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
}

// T212Config holds Trading212 API settings.
type T212Config struct {
	APIKey  string        `yaml:"api_key"`
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// InfluxDBConfig holds the InfluxDB v2 connection and target bucket.
type InfluxDBConfig struct {
	URL              string `yaml:"url"`
	Token            string `yaml:"token"`
	Org              string `yaml:"org"`
	StocksBucketName string `yaml:"stocks_bucket_name"`
}
