package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/tomasper/t212flux/internal/config"
	"github.com/tomasper/t212flux/internal/exporter"
	"github.com/tomasper/t212flux/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/exporter.yaml", "path to config file")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	logger.Info("starting exporter",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Optional .env for local runs; absence is not an error.
	if err := godotenv.Load(); err == nil {
		logger.Debug("loaded .env file")
	}

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("configuration loaded",
		"api_url", cfg.T212.URL,
		"influxdb_url", cfg.InfluxDB.URL,
		"bucket", cfg.InfluxDB.StocksBucketName,
	)

	// One run per invocation; scheduling is the caller's job.
	if err := exporter.New(cfg, logger).Run(context.Background()); err != nil {
		logger.Error("export run failed", "error", err)
		os.Exit(1)
	}

	logger.Info("exporter finished")
}
