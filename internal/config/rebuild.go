package config

const envRebuildWebhook = "REBUILD_WEBHOOK_URL"

// RebuildConfig points at the static-site rebuild hook. Empty URL disables
// the trigger.
type RebuildConfig struct {
	WebhookURL string
}

func loadRebuild() RebuildConfig {
	return RebuildConfig{
		WebhookURL: envOrDefault(envRebuildWebhook, ""),
	}
}
