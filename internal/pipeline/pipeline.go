package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/couchcryptid/temperature-heatmap/internal/pipeline")

// BatchLoader writes every observation of a chart to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, chart domain.Chart) error
}

// Options selects the dataset and how it is drawn.
type Options struct {
	Source  string
	Layout  domain.Layout
	Palette domain.Palette
}

// DefaultOptions draws source with the default layout and palette.
func DefaultOptions(source string) Options {
	return Options{
		Source:  source,
		Layout:  domain.DefaultLayout(),
		Palette: domain.DefaultPalette(),
	}
}

// Pipeline loads the dataset, computes the heatmap, and optionally exports
// the observations. There is no retry: a failed load is returned to the caller.
type Pipeline struct {
	loader  domain.DatasetLoader
	sink    BatchLoader
	opts    Options
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// New creates a Pipeline. sink may be nil when export is disabled.
func New(loader domain.DatasetLoader, sink BatchLoader, opts Options, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		loader:  loader,
		sink:    sink,
		opts:    opts,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once a chart has been built successfully,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no chart has been built yet")
	}
	return nil
}

// Build loads the dataset and computes the chart.
func (p *Pipeline) Build(ctx context.Context) (domain.Chart, error) {
	ctx, span := tracer.Start(ctx, "pipeline.Build")
	defer span.End()
	span.SetAttributes(attribute.String("source", p.opts.Source))

	start := time.Now()

	ds, err := p.loader.Load(ctx, p.opts.Source)
	if err != nil {
		p.fail(span, err)
		p.logger.Error("load dataset failed", "source", p.opts.Source, "error", err)
		return domain.Chart{}, err
	}

	chart, err := domain.BuildChart(ds, p.opts.Layout, p.opts.Palette)
	if err != nil {
		p.fail(span, err)
		p.logger.Error("build chart failed", "source", p.opts.Source, "error", err)
		return domain.Chart{}, err
	}

	p.metrics.ChartsBuilt.Inc()
	p.metrics.ChartBuildDuration.Observe(time.Since(start).Seconds())
	p.metrics.UnbucketedObservations.Set(float64(chart.Unbucketed))
	if chart.Unbucketed > 0 {
		p.logger.Debug("observations without a color bucket", "count", chart.Unbucketed, "z_min", chart.Z.Min)
	}
	span.SetAttributes(attribute.Int("observations", len(chart.Cells)))
	p.ready.Store(true)

	return chart, nil
}

// Export builds the chart and writes its observations to the sink.
// It returns the number of observations written.
func (p *Pipeline) Export(ctx context.Context) (int, error) {
	if p.sink == nil {
		return 0, errors.New("export is not configured")
	}

	chart, err := p.Build(ctx)
	if err != nil {
		return 0, err
	}

	ctx, span := tracer.Start(ctx, "pipeline.Export")
	defer span.End()

	if err := p.sink.LoadBatch(ctx, chart); err != nil {
		p.metrics.PublishErrors.Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		p.logger.Error("export observations failed", "error", err, "batch_size", len(chart.Cells))
		return 0, err
	}

	p.metrics.ObservationsPublished.Add(float64(len(chart.Cells)))
	p.logger.Info("observations exported", "count", len(chart.Cells))
	return len(chart.Cells), nil
}

func (p *Pipeline) fail(span trace.Span, err error) {
	p.metrics.ChartErrors.Inc()
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
