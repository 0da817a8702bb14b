package config

const (
	envOpenAIKey   = "OPENAI_API_KEY"
	envOpenAIModel = "OPENAI_MODEL"

	defaultOpenAIModel = "gpt-4o-mini"
)

// RecapConfig controls the text-generation backend. An empty APIKey disables
// recap generation rather than failing startup.
type RecapConfig struct {
	APIKey string
	Model  string
}

func loadRecap() RecapConfig {
	return RecapConfig{
		APIKey: envOrDefault(envOpenAIKey, ""),
		Model:  envOrDefault(envOpenAIModel, defaultOpenAIModel),
	}
}
