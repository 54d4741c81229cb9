package influx

import (
	"context"
	"errors"
	"log/slog"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/tomasper/t212flux/internal/config"
)

// Writer performs synchronous batch writes against an InfluxDB v2 instance.
type Writer struct {
	cfg    config.InfluxDBConfig
	logger *slog.Logger
}

// NewWriter creates a Writer. A nil logger falls back to slog.Default().
func NewWriter(cfg config.InfluxDBConfig, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{cfg: cfg, logger: logger}
}

// Write pushes the batch to the given bucket in one synchronous call.
// The client is created per call and closed on every exit path; write
// errors propagate to the caller untouched.
func (w *Writer) Write(ctx context.Context, points []*write.Point, bucket string) error {
	if len(points) == 0 {
		return errors.New("empty batch")
	}

	client := influxdb2.NewClient(w.cfg.URL, w.cfg.Token)
	defer client.Close()

	writeAPI := client.WriteAPIBlocking(w.cfg.Org, bucket)
	if err := writeAPI.WritePoint(ctx, points...); err != nil {
		return err
	}

	w.logger.Info("batch written to influxdb",
		"bucket", bucket,
		"points", len(points),
	)

	return nil
}
