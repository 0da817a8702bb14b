package config

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	PollInterval Duration
	TrackedTeam  string
	NHLE         NHLEConfig
	Recap        RecapConfig
	Store        StoreConfig
	Rebuild      RebuildConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
		TrackedTeam:  envOrDefault(envTrackedTeam, defaultTrackedTeam),
		NHLE:         loadNHLE(),
		Recap:        loadRecap(),
		Store:        loadStore(),
		Rebuild:      loadRebuild(),
		Metrics:      loadMetrics(),
	}
}
