package nhle

import "time"

const (
	// ProviderName identifies this client in logs and metrics.
	ProviderName = "nhle"

	defaultBaseURL     = "https://api-web.nhle.com"
	defaultHTTPTimeout = 15 * time.Second
)

// Upstream gameState values. Anything not listed as future or terminal is
// treated as live.
const (
	stateFuture   = "FUT"
	statePregame  = "PRE"
	stateOfficial = "OFF"
	stateFinal    = "FINAL"
	stateOver     = "OVER"
)
