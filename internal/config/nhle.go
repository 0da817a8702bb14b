package config

const (
	envNHLEBaseURL = "NHLE_BASE_URL"

	defaultNHLEBaseURL = "https://api-web.nhle.com"
)

// NHLEConfig controls how we talk to the NHL web API.
type NHLEConfig struct {
	BaseURL string
}

func loadNHLE() NHLEConfig {
	return NHLEConfig{
		BaseURL: envOrDefault(envNHLEBaseURL, defaultNHLEBaseURL),
	}
}
