package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *ExporterConfig) Validate() error {
	if c.T212.APIKey == NotSet || c.T212.APIKey == "" {
		return errors.New("t212.api_key is required")
	}
	if c.T212.URL == NotSet || c.T212.URL == "" {
		return errors.New("t212.url is required")
	}
	if c.T212.Timeout <= 0 {
		return fmt.Errorf("t212.timeout must be positive, got %s", c.T212.Timeout)
	}

	if c.InfluxDB.URL == NotSet || c.InfluxDB.URL == "" {
		return errors.New("influxdb.url is required")
	}
	if c.InfluxDB.Token == NotSet || c.InfluxDB.Token == "" {
		return errors.New("influxdb.token is required")
	}
	if c.InfluxDB.Org == NotSet || c.InfluxDB.Org == "" {
		return errors.New("influxdb.org is required")
	}
	if c.InfluxDB.StocksBucketName == "" {
		return errors.New("influxdb.stocks_bucket_name is required")
	}

	return nil
}
