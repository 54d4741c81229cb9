package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	yaml := `
t212:
  api_key: test-key
  url: https://live.trading212.com/api/v0/equity/portfolio
influxdb:
  url: http://localhost:8086
  token: test-token
  org: test-org
  stocks_bucket_name: test-stocks
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.T212.APIKey != "test-key" {
		t.Errorf("T212.APIKey = %q, want %q", cfg.T212.APIKey, "test-key")
	}
	if cfg.T212.URL != "https://live.trading212.com/api/v0/equity/portfolio" {
		t.Errorf("T212.URL = %q", cfg.T212.URL)
	}
	if cfg.InfluxDB.Org != "test-org" {
		t.Errorf("InfluxDB.Org = %q, want %q", cfg.InfluxDB.Org, "test-org")
	}
	if cfg.InfluxDB.StocksBucketName != "test-stocks" {
		t.Errorf("InfluxDB.StocksBucketName = %q, want %q", cfg.InfluxDB.StocksBucketName, "test-stocks")
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_INFLUX_TOKEN", "secret123")

	yaml := `
influxdb:
  token: ${TEST_INFLUX_TOKEN}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.InfluxDB.Token != "secret123" {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, "secret123")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("T212_API_KEY", "env-key")
	t.Setenv("INFLUXDB_STOCKS_BUCKET_NAME", "env-bucket")

	yaml := `
t212:
  api_key: file-key
influxdb:
  stocks_bucket_name: file-bucket
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.T212.APIKey != "env-key" {
		t.Errorf("T212.APIKey = %q, want %q", cfg.T212.APIKey, "env-key")
	}
	if cfg.InfluxDB.StocksBucketName != "env-bucket" {
		t.Errorf("InfluxDB.StocksBucketName = %q, want %q", cfg.InfluxDB.StocksBucketName, "env-bucket")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("T212_URL", "https://demo.trading212.com/api/v0/equity/portfolio")

	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.T212.URL != "https://demo.trading212.com/api/v0/equity/portfolio" {
		t.Errorf("T212.URL = %q, want env value", cfg.T212.URL)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.T212.APIKey != NotSet {
		t.Errorf("T212.APIKey = %q, want %q", cfg.T212.APIKey, NotSet)
	}
	if cfg.T212.URL != NotSet {
		t.Errorf("T212.URL = %q, want %q", cfg.T212.URL, NotSet)
	}
	if cfg.T212.Timeout != DefaultAPITimeout {
		t.Errorf("T212.Timeout = %v, want %v", cfg.T212.Timeout, DefaultAPITimeout)
	}
	if cfg.InfluxDB.Token != NotSet {
		t.Errorf("InfluxDB.Token = %q, want %q", cfg.InfluxDB.Token, NotSet)
	}
	if cfg.InfluxDB.StocksBucketName != DefaultStocksBucket {
		t.Errorf("InfluxDB.StocksBucketName = %q, want %q", cfg.InfluxDB.StocksBucketName, DefaultStocksBucket)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *ExporterConfig {
		return &ExporterConfig{
			T212: T212Config{
				APIKey:  "key",
				URL:     "https://live.trading212.com/api/v0/equity/portfolio",
				Timeout: DefaultAPITimeout,
			},
			InfluxDB: InfluxDBConfig{
				URL:              "http://localhost:8086",
				Token:            "token",
				Org:              "org",
				StocksBucketName: DefaultStocksBucket,
			},
		}
	}

	t.Run("valid config", func(t *testing.T) {
		if err := valid().Validate(); err != nil {
			t.Errorf("Validate() = %v, want nil", err)
		}
	})

	tests := []struct {
		name   string
		mutate func(*ExporterConfig)
	}{
		{"api key sentinel", func(c *ExporterConfig) { c.T212.APIKey = NotSet }},
		{"api key empty", func(c *ExporterConfig) { c.T212.APIKey = "" }},
		{"url sentinel", func(c *ExporterConfig) { c.T212.URL = NotSet }},
		{"zero timeout", func(c *ExporterConfig) { c.T212.Timeout = 0 }},
		{"influx url sentinel", func(c *ExporterConfig) { c.InfluxDB.URL = NotSet }},
		{"influx token sentinel", func(c *ExporterConfig) { c.InfluxDB.Token = NotSet }},
		{"influx org sentinel", func(c *ExporterConfig) { c.InfluxDB.Org = NotSet }},
		{"empty bucket", func(c *ExporterConfig) { c.InfluxDB.StocksBucketName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestLoadAndValidate(t *testing.T) {
	t.Run("fails on sentinel values", func(t *testing.T) {
		path := writeTempFile(t, "")
		if _, err := LoadAndValidate(path); err == nil {
			t.Error("LoadAndValidate() = nil, want error for unset required fields")
		}
	})

	t.Run("passes with full env", func(t *testing.T) {
		t.Setenv("T212_API_KEY", "key")
		t.Setenv("T212_URL", "https://live.trading212.com/api/v0/equity/portfolio")
		t.Setenv("INFLUXDB_URL", "http://localhost:8086")
		t.Setenv("INFLUXDB_TOKEN", "token")
		t.Setenv("INFLUXDB_ORG", "org")

		cfg, err := LoadAndValidate(filepath.Join(t.TempDir(), "missing.yaml"))
		if err != nil {
			t.Fatalf("LoadAndValidate failed: %v", err)
		}
		if cfg.InfluxDB.StocksBucketName != DefaultStocksBucket {
			t.Errorf("StocksBucketName = %q, want default %q", cfg.InfluxDB.StocksBucketName, DefaultStocksBucket)
		}
	})
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}
