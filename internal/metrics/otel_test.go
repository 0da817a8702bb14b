package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a recorder even when disabled")
	}
	if handler != nil {
		t.Fatal("disabled telemetry must not expose a handler")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupEnabledPrometheusOnly(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true, ServiceName: "test"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	if rec == nil || rec.otel == nil {
		t.Fatal("expected recorder with instruments")
	}
	if handler == nil {
		t.Fatal("expected prometheus handler")
	}
}

func TestSetupPropagatesPrometheusFailure(t *testing.T) {
	orig := promReaderFactory
	defer func() { promReaderFactory = orig }()

	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry init failed")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil {
		t.Fatal("expected setup failure when the prometheus reader cannot be built")
	}
}

func TestSetupOTLPFailure(t *testing.T) {
	orig := otlpReaderFactory
	defer func() { otlpReaderFactory = orig }()

	otlpReaderFactory = func(ctx context.Context, endpoint string, insecure bool) (sdkmetric.Reader, error) {
		return nil, errors.New("exporter init failed")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{
		Enabled:      true,
		OtlpEndpoint: "localhost:4318",
	})
	if err == nil {
		t.Fatal("expected setup failure when OTLP reader cannot be built")
	}
}
