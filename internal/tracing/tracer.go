// Package tracing records OpenTelemetry spans for editor commands and note
// file I/O.
package tracing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Exporters accepted by Config.Exporter.
const (
	ExporterFile    = "file"
	ExporterConsole = "console"
	ExporterOTLP    = "otlp"
	ExporterNone    = "none"
)

const serviceName = "folio"

// Config selects where spans go.
type Config struct {
	Enabled bool
	// Exporter is one of the Exporter* constants. Empty means file.
	Exporter string
	// FilePath receives one JSON span per line for the file exporter. The
	// file is rotated at 10 MB.
	FilePath     string
	OTLPEndpoint string
	// SampleRate is the fraction of root spans kept, 0 < rate <= 1.
	SampleRate float64
	// Console is where the console exporter writes. Defaults to stderr,
	// which keeps spans out of the terminal UI when redirected.
	Console io.Writer
}

// DefaultConfig has tracing off and the file exporter selected.
func DefaultConfig() Config {
	return Config{
		Exporter:     ExporterFile,
		OTLPEndpoint: "localhost:4317",
		SampleRate:   1.0,
	}
}

// Provider owns the tracer provider and whatever the exporter writes to.
type Provider struct {
	sdk     *sdktrace.TracerProvider
	tracer  trace.Tracer
	closers []io.Closer
}

// NewProvider builds a provider for cfg. A disabled config yields a no-op
// tracer; Tracer is never nil.
func NewProvider(cfg Config) (*Provider, error) {
	if !cfg.Enabled {
		return &Provider{tracer: noop.NewTracerProvider().Tracer(serviceName)}, nil
	}

	p := &Provider{}
	exporter, err := p.exporter(cfg)
	if err != nil {
		return nil, err
	}

	rate := cfg.SampleRate
	if rate <= 0 || rate > 1 {
		rate = 1
	}
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithResource(resource.NewSchemaless(attribute.String("service.name", serviceName))),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(rate))),
	}
	if exporter != nil {
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}

	p.sdk = sdktrace.NewTracerProvider(opts...)
	p.tracer = p.sdk.Tracer(serviceName)
	otel.SetTracerProvider(p.sdk)
	return p, nil
}

func (p *Provider) exporter(cfg Config) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case ExporterFile, "":
		if cfg.FilePath == "" {
			return nil, errors.New("tracing: file exporter needs a file path")
		}
		sink := &lumberjack.Logger{Filename: cfg.FilePath, MaxSize: 10, MaxBackups: 3}
		p.closers = append(p.closers, sink)
		exp, err := stdouttrace.New(stdouttrace.WithWriter(sink))
		if err != nil {
			return nil, fmt.Errorf("tracing: file exporter: %w", err)
		}
		return exp, nil
	case ExporterConsole:
		w := cfg.Console
		if w == nil {
			w = os.Stderr
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
		if err != nil {
			return nil, fmt.Errorf("tracing: console exporter: %w", err)
		}
		return exp, nil
	case ExporterOTLP:
		endpoint := cfg.OTLPEndpoint
		if endpoint == "" {
			endpoint = DefaultConfig().OTLPEndpoint
		}
		exp, err := otlptracegrpc.New(context.Background(),
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithInsecure(),
		)
		if err != nil {
			return nil, fmt.Errorf("tracing: otlp exporter: %w", err)
		}
		return exp, nil
	case ExporterNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("tracing: unknown exporter %q", cfg.Exporter)
	}
}

// Tracer returns the tracer spans are started on.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// Enabled reports whether spans are recorded.
func (p *Provider) Enabled() bool {
	return p.sdk != nil
}

// Shutdown flushes buffered spans and closes the exporter's output.
func (p *Provider) Shutdown(ctx context.Context) error {
	var errs []error
	if p.sdk != nil {
		errs = append(errs, p.sdk.Shutdown(ctx))
	}
	for _, c := range p.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
