package config

import "time"

const (
	envPort         = "PORT"
	envPollInterval = "POLL_INTERVAL"
	envTrackedTeam  = "TRACKED_TEAM"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort        = "4000"
	defaultTrackedTeam = "TOR"
	// One-minute cadence; the poller itself short-circuits cycles while no
	// game can plausibly have finished, so this stays cheap.
	defaultPollInterval = 1 * Duration(time.Minute)
	defaultMetricsPort  = "9090"
)
