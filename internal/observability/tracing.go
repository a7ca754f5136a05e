package observability

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/polymaze/internal/logging"
)

// TracingConfig governs how tracing is initialised.
type TracingConfig struct {
	Enabled     bool
	ServiceName string
	SampleRatio float64
	// Output receives the stdout exporter's spans; defaults to os.Stderr so
	// generated mazes on stdout stay parseable.
	Output io.Writer
}

// TracingConfigFromEnv reads POLYMAZE_TRACING_ENABLED, POLYMAZE_TRACING_SERVICE_NAME
// and POLYMAZE_TRACING_SAMPLE_RATIO, using defaults when unset.
func TracingConfigFromEnv() TracingConfig {
	service := os.Getenv("POLYMAZE_TRACING_SERVICE_NAME")
	if service == "" {
		service = "polymaze"
	}
	ratio := 1.0
	if raw := os.Getenv("POLYMAZE_TRACING_SAMPLE_RATIO"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 && parsed <= 1 {
			ratio = parsed
		}
	}

	return TracingConfig{
		Enabled:     strings.EqualFold(os.Getenv("POLYMAZE_TRACING_ENABLED"), "true"),
		ServiceName: service,
		SampleRatio: ratio,
	}
}

// InitTracing installs the global tracer provider. Disabled tracing installs
// a no-op provider. The returned function flushes and stops the exporter.
func InitTracing(ctx context.Context, cfg TracingConfig, log logging.Logger) (func(context.Context) error, error) {
	log = logging.OrNoop(log)

	if !cfg.Enabled {
		otel.SetTracerProvider(noop.NewTracerProvider())
		log.Debug(ctx, "tracing disabled; using noop tracer provider")
		return func(context.Context) error { return nil }, nil
	}

	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	exp, err := stdouttrace.New(
		stdouttrace.WithWriter(out),
		stdouttrace.WithPrettyPrint(),
		stdouttrace.WithoutTimestamps(),
	)
	if err != nil {
		return nil, fmt.Errorf("create stdout exporter: %w", err)
	}

	res, err := resource.New(ctx, resource.WithAttributes(
		attribute.String("service.name", cfg.ServiceName),
		attribute.String("service.namespace", "polymaze"),
	))
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	log.Info(ctx, "tracing enabled",
		logging.String("exporter", "stdout"),
		logging.String("service_name", cfg.ServiceName),
		logging.Float64("sample_ratio", cfg.SampleRatio),
	)

	return tp.Shutdown, nil
}

// ShutdownWithTimeout invokes shutdown with a bounded timeout, logging
// instead of returning failures.
func ShutdownWithTimeout(ctx context.Context, shutdown func(context.Context) error, log logging.Logger) {
	if shutdown == nil {
		return
	}
	log = logging.OrNoop(log)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Warn(ctx, "tracing shutdown failed", logging.Err(err))
	}
}
