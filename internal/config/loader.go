package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file and expands environment variables.
// A missing file is not an error: resolution then starts from an empty
// config and relies on environment overrides and defaults.
func Load(path string) (*ExporterConfig, error) {
	var cfg ExporterConfig

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// env-only deployment, nothing to parse
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		// Expand ${VAR} environment variables
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config yaml: %w", err)
		}
	}

	cfg.applyEnv()

	return &cfg, nil
}

// LoadWithDefaults loads config and applies default values.
func LoadWithDefaults(path string) (*ExporterConfig, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadAndValidate loads config, applies defaults, and validates.
func LoadAndValidate(path string) (*ExporterConfig, error) {
	cfg, err := LoadWithDefaults(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv lets environment variables override file values.
func (c *ExporterConfig) applyEnv() {
	setFromEnv(&c.T212.APIKey, "T212_API_KEY")
	setFromEnv(&c.T212.URL, "T212_URL")
	setFromEnv(&c.InfluxDB.URL, "INFLUXDB_URL")
	setFromEnv(&c.InfluxDB.Token, "INFLUXDB_TOKEN")
	setFromEnv(&c.InfluxDB.Org, "INFLUXDB_ORG")
	setFromEnv(&c.InfluxDB.StocksBucketName, "INFLUXDB_STOCKS_BUCKET_NAME")
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}
