package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.28.0"
	"go.opentelemetry.io/otel/trace"
)

const (
	ServiceName    = "nuchart"
	ServiceVersion = "1.0.0"
	MeterName      = "nuchart"
)

// OTelProviders holds the OpenTelemetry providers plus the Prometheus
// scrape handler backed by the metric exporter.
type OTelProviders struct {
	TracerProvider *sdktrace.TracerProvider
	MeterProvider  *sdkmetric.MeterProvider
	Tracer         trace.Tracer
	Meter          metric.Meter
	PrometheusHTTP http.Handler
	Logger         *slog.Logger
}

// InitializeOTel sets up tracing (stdout exporter) and metrics
// (Prometheus exporter) for the web surface.
func InitializeOTel(logger *slog.Logger) (*OTelProviders, error) {
	if logger == nil {
		logger = slog.Default()
	}

	res, err := resource.New(context.Background(),
		resource.WithAttributes(
			semconv.ServiceName(ServiceName),
			semconv.ServiceVersion(ServiceVersion),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}

	traceExporter, err := stdouttrace.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create trace exporter: %w", err)
	}
	tracerProvider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(traceExporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tracerProvider)

	metricExporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("failed to create prometheus exporter: %w", err)
	}
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(metricExporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(meterProvider)

	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	logger.Info("observability initialized",
		slog.String("service", ServiceName),
		slog.String("version", ServiceVersion))

	return &OTelProviders{
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
		Tracer:         tracerProvider.Tracer(MeterName),
		Meter:          meterProvider.Meter(MeterName),
		PrometheusHTTP: promhttp.Handler(),
		Logger:         logger,
	}, nil
}

// Shutdown flushes both providers.
func (p *OTelProviders) Shutdown(ctx context.Context) error {
	if err := p.TracerProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down tracer provider: %w", err)
	}
	if err := p.MeterProvider.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shut down meter provider: %w", err)
	}
	return nil
}

// PipelineMetrics are the instruments recorded by the parse/fold pass.
type PipelineMetrics struct {
	RecordsParsed   metric.Int64Counter
	LinesSkipped    metric.Int64Counter
	PointsDerived   metric.Int64Counter
	PipelineSeconds metric.Float64Histogram
}

// NewPipelineMetrics creates the pipeline instruments on meter.
func NewPipelineMetrics(meter metric.Meter) (*PipelineMetrics, error) {
	recordsParsed, err := meter.Int64Counter("nuchart_records_parsed_total",
		metric.WithDescription("Ground-state records parsed from the nuclide table"))
	if err != nil {
		return nil, fmt.Errorf("failed to create records counter: %w", err)
	}
	linesSkipped, err := meter.Int64Counter("nuchart_lines_skipped_total",
		metric.WithDescription("Comment and isomer lines skipped before parsing"))
	if err != nil {
		return nil, fmt.Errorf("failed to create skip counter: %w", err)
	}
	pointsDerived, err := meter.Int64Counter("nuchart_points_derived_total",
		metric.WithDescription("Separation energy points derived from the grid"))
	if err != nil {
		return nil, fmt.Errorf("failed to create points counter: %w", err)
	}
	pipelineSeconds, err := meter.Float64Histogram("nuchart_pipeline_duration_seconds",
		metric.WithDescription("Wall time of one full parse and fold pass"))
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}
	return &PipelineMetrics{
		RecordsParsed:   recordsParsed,
		LinesSkipped:    linesSkipped,
		PointsDerived:   pointsDerived,
		PipelineSeconds: pipelineSeconds,
	}, nil
}
