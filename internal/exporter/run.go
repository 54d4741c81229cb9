package exporter

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/tomasper/t212flux/internal/config"
	"github.com/tomasper/t212flux/internal/influx"
	"github.com/tomasper/t212flux/internal/model"
	"github.com/tomasper/t212flux/internal/t212"
)

// PositionSource fetches the currently open positions.
type PositionSource interface {
	GetOpenPositions(ctx context.Context) ([]model.Position, error)
}

// PointSink writes one batch of points to a bucket.
type PointSink interface {
	Write(ctx context.Context, points []*write.Point, bucket string) error
}

// Exporter runs the fetch -> normalize -> write sequence once per call.
type Exporter struct {
	source PositionSource
	sink   PointSink
	bucket string
	logger *slog.Logger
	now    func() time.Time
}

// New creates an Exporter from validated configuration.
func New(cfg *config.ExporterConfig, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}

	source := t212.NewClient(cfg.T212.URL, cfg.T212.APIKey,
		t212.WithTimeout(cfg.T212.Timeout),
		t212.WithLogger(logger),
	)

	return &Exporter{
		source: source,
		sink:   influx.NewWriter(cfg.InfluxDB, logger),
		bucket: cfg.InfluxDB.StocksBucketName,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes one orchestration pass. Every error is fatal to the run;
// a failed run leaves nothing behind and is simply re-invoked later.
func (e *Exporter) Run(ctx context.Context) error {
	logger := e.logger.With("run_id", uuid.NewString())

	logger.Info("fetching open positions")
	positions, err := e.source.GetOpenPositions(ctx)
	if err != nil {
		return err
	}

	if len(positions) == 0 {
		logger.Info("no open positions, nothing to write")
		return nil
	}

	// One timestamp for the whole batch: the points represent a single
	// snapshot in time.
	timestamp := e.now().UTC()

	points := make([]*write.Point, 0, len(positions))
	for _, pos := range positions {
		points = append(points, influx.NewPoint(pos, timestamp))
	}

	logger.Info("writing batch",
		"points", len(points),
		"bucket", e.bucket,
		"timestamp", timestamp,
	)

	if err := e.sink.Write(ctx, points, e.bucket); err != nil {
		return err
	}

	logger.Info("run complete")
	return nil
}
