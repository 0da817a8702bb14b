package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

var (
	promReaderFactory = prometheusComponents
	otlpReaderFactory = buildOTLPReader
	instrumentFactory = newOtelInstruments
)

// TelemetryConfig controls how metrics are exported.
type TelemetryConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

// Setup configures OpenTelemetry metrics with a Prometheus exporter and optional OTLP exporter.
// It returns a Recorder, the Prometheus HTTP handler, and a shutdown function.
func Setup(ctx context.Context, cfg TelemetryConfig) (*Recorder, http.Handler, func(context.Context) error, error) {
	if !cfg.Enabled {
		return NewRecorder(), nil, func(context.Context) error { return nil }, nil
	}

	if cfg.ServiceName == "" {
		cfg.ServiceName = "leafs-result-service"
	}

	promReader, promHandler, err := promReaderFactory()
	if err != nil {
		return nil, nil, nil, err
	}

	opts := []sdkmetric.Option{sdkmetric.WithReader(promReader)}

	if cfg.OtlpEndpoint != "" {
		otlpReader, err := otlpReaderFactory(ctx, cfg.OtlpEndpoint, cfg.OtlpInsecure)
		if err != nil {
			return nil, nil, nil, err
		}
		opts = append(opts, sdkmetric.WithReader(otlpReader))
	}

	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceName(cfg.ServiceName)),
	)
	if err != nil {
		return nil, nil, nil, err
	}

	opts = append(opts, sdkmetric.WithResource(res))

	provider := sdkmetric.NewMeterProvider(opts...)

	otelInst, err := instrumentFactory(provider)
	if err != nil {
		return nil, nil, nil, err
	}

	rec := newRecorder(otelInst)
	shutdown := func(c context.Context) error {
		return provider.Shutdown(c)
	}

	return rec, promHandler, shutdown, nil
}

func buildOTLPReader(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
	otlpOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(endpoint)}
	if insecure {
		otlpOpts = append(otlpOpts, otlpmetrichttp.WithInsecure())
	}
	otlpExp, err := otlpmetrichttp.New(ctx, otlpOpts...)
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewPeriodicReader(otlpExp, sdkmetric.WithInterval(15*time.Second)), nil
}

func prometheusComponents() (sdkmetric.Reader, http.Handler, error) {
	reg := prometheus.NewRegistry()
	promExp, err := promexporter.New(promexporter.WithRegisterer(reg))
	if err != nil {
		return nil, nil, err
	}
	return promExp, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), nil
}

type otelInstruments struct {
	meter               metric.Meter
	requests            metric.Int64Counter
	requestLatencyMs    metric.Float64Histogram
	providerAttempts    metric.Int64Counter
	providerErrors      metric.Int64Counter
	providerLatencyMs   metric.Float64Histogram
	generationAttempts  metric.Int64Counter
	generationErrors    metric.Int64Counter
	generationLatencyMs metric.Float64Histogram
	pollCycles          metric.Int64Counter
	pollErrors          metric.Int64Counter
	pollLatencyMs       metric.Float64Histogram
}

func newOtelInstruments(provider metric.MeterProvider) (*otelInstruments, error) {
	meter := provider.Meter("leafs-result-service")

	requests, err := meter.Int64Counter("http_requests_total")
	if err != nil {
		return nil, err
	}
	requestLatency, err := meter.Float64Histogram("http_request_duration_ms")
	if err != nil {
		return nil, err
	}
	providerAttempts, err := meter.Int64Counter("provider_attempts_total")
	if err != nil {
		return nil, err
	}
	providerErrors, err := meter.Int64Counter("provider_errors_total")
	if err != nil {
		return nil, err
	}
	providerLatency, err := meter.Float64Histogram("provider_duration_ms")
	if err != nil {
		return nil, err
	}
	generationAttempts, err := meter.Int64Counter("generation_attempts_total")
	if err != nil {
		return nil, err
	}
	generationErrors, err := meter.Int64Counter("generation_errors_total")
	if err != nil {
		return nil, err
	}
	generationLatency, err := meter.Float64Histogram("generation_duration_ms")
	if err != nil {
		return nil, err
	}
	pollCycles, err := meter.Int64Counter("poll_cycles_total")
	if err != nil {
		return nil, err
	}
	pollErrors, err := meter.Int64Counter("poll_errors_total")
	if err != nil {
		return nil, err
	}
	pollLatency, err := meter.Float64Histogram("poll_cycle_duration_ms")
	if err != nil {
		return nil, err
	}

	return &otelInstruments{
		meter:               meter,
		requests:            requests,
		requestLatencyMs:    requestLatency,
		providerAttempts:    providerAttempts,
		providerErrors:      providerErrors,
		providerLatencyMs:   providerLatency,
		generationAttempts:  generationAttempts,
		generationErrors:    generationErrors,
		generationLatencyMs: generationLatency,
		pollCycles:          pollCycles,
		pollErrors:          pollErrors,
		pollLatencyMs:       pollLatency,
	}, nil
}

func (o *otelInstruments) recordHTTPRequest(method, path string, status int, duration time.Duration) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{
		attribute.String(AttrMethod, method),
		attribute.String(AttrPath, path),
		attribute.Int(AttrStatus, status),
	}
	o.add(o.requests, 1, attrs...)
	o.observe(o.requestLatencyMs, float64(duration.Milliseconds()), attrs...)
}

func (o *otelInstruments) recordProviderAttempt(provider string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrProvider, provider)}
	o.add(o.providerAttempts, 1, attrs...)
	o.observe(o.providerLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.add(o.providerErrors, 1, attrs...)
	}
}

func (o *otelInstruments) recordGeneration(duration time.Duration, err error) {
	if o == nil {
		return
	}
	o.add(o.generationAttempts, 1)
	o.observe(o.generationLatencyMs, float64(duration.Milliseconds()))
	if err != nil {
		o.add(o.generationErrors, 1)
	}
}

func (o *otelInstruments) recordPollCycle(state string, duration time.Duration, err error) {
	if o == nil {
		return
	}
	attrs := []attribute.KeyValue{attribute.String(AttrState, state)}
	o.add(o.pollCycles, 1, attrs...)
	o.observe(o.pollLatencyMs, float64(duration.Milliseconds()), attrs...)
	if err != nil {
		o.add(o.pollErrors, 1, attrs...)
	}
}

func (o *otelInstruments) add(counter metric.Int64Counter, value int64, attrs ...attribute.KeyValue) {
	if counter == nil {
		return
	}
	counter.Add(context.Background(), value, metric.WithAttributes(attrs...))
}

func (o *otelInstruments) observe(hist metric.Float64Histogram, value float64, attrs ...attribute.KeyValue) {
	if hist == nil {
		return
	}
	hist.Record(context.Background(), value, metric.WithAttributes(attrs...))
}
