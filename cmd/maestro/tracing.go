package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type tracingConfig struct {
	Endpoint    string
	Insecure    bool
	ServiceName string
	SampleRatio float64
}

func tracingConfigFromEnv() (tracingConfig, error) {
	cfg := tracingConfig{
		Endpoint:    strings.TrimSpace(os.Getenv("MAESTRO_OTEL_EXPORTER_OTLP_ENDPOINT")),
		Insecure:    envBool("MAESTRO_OTEL_EXPORTER_OTLP_INSECURE"),
		ServiceName: strings.TrimSpace(os.Getenv("MAESTRO_OTEL_SERVICE_NAME")),
		SampleRatio: 1,
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "maestro"
	}
	if v := strings.TrimSpace(os.Getenv("MAESTRO_OTEL_SAMPLE_RATIO")); v != "" {
		ratio, err := strconv.ParseFloat(v, 64)
		if err != nil || ratio < 0 || ratio > 1 {
			return tracingConfig{}, fmt.Errorf("MAESTRO_OTEL_SAMPLE_RATIO must be a number in [0, 1] (got %q)", v)
		}
		cfg.SampleRatio = ratio
	}
	return cfg, nil
}

// exporterOptions accepts either a bare host:port or a URL; an http URL
// implies an insecure connection.
func (c tracingConfig) exporterOptions() []otlptracehttp.Option {
	var opts []otlptracehttp.Option
	insecure := c.Insecure
	if u, err := url.Parse(c.Endpoint); err == nil && u.Host != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(u.Host))
		if u.Path != "" && u.Path != "/" {
			opts = append(opts, otlptracehttp.WithURLPath(u.Path))
		}
		if strings.EqualFold(u.Scheme, "http") {
			insecure = true
		}
	} else {
		opts = append(opts, otlptracehttp.WithEndpoint(c.Endpoint))
	}
	if insecure {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return opts
}

// initTracing installs an OTLP/HTTP tracer provider when an endpoint is
// configured. Without one, the returned shutdown is a no-op.
func initTracing(ctx context.Context) (func(context.Context) error, error) {
	cfg, err := tracingConfigFromEnv()
	if err != nil {
		return nil, err
	}
	if cfg.Endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracehttp.New(ctx, cfg.exporterOptions()...)
	if err != nil {
		return nil, fmt.Errorf("create otlp trace exporter: %w", err)
	}

	res := resource.NewWithAttributes("", attribute.String("service.name", cfg.ServiceName))
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp.Shutdown, nil
}

func envBool(name string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
