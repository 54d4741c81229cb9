package config

import "time"

// NotSet marks a required value that was never provided. Validation
// rejects any required field still holding it.
const NotSet = "NOT_SET"

// Default values for optional configuration fields.
const (
	DefaultAPITimeout   = 30 * time.Second
	DefaultStocksBucket = "stocks"
)

func (c *ExporterConfig) applyDefaults() {
	// Trading212 defaults
	if c.T212.APIKey == "" {
		c.T212.APIKey = NotSet
	}
	if c.T212.URL == "" {
		c.T212.URL = NotSet
	}
	if c.T212.Timeout == 0 {
		c.T212.Timeout = DefaultAPITimeout
	}

	// InfluxDB defaults
	if c.InfluxDB.URL == "" {
		c.InfluxDB.URL = NotSet
	}
	if c.InfluxDB.Token == "" {
		c.InfluxDB.Token = NotSet
	}
	if c.InfluxDB.Org == "" {
		c.InfluxDB.Org = NotSet
	}
	if c.InfluxDB.StocksBucketName == "" {
		c.InfluxDB.StocksBucketName = DefaultStocksBucket
	}
}
