package rebuild

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"leafs-result-service/internal/logging"
)

const defaultTimeout = 10 * time.Second

// Trigger fires the static-site rebuild webhook after a successful poll
// cycle. Strictly fire-and-forget: failures are logged and never retried,
// and an outage must never block state persistence.
type Trigger struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewTrigger constructs a Trigger. An empty URL yields a disabled trigger.
func NewTrigger(url string, client *http.Client, logger *slog.Logger) *Trigger {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	return &Trigger{
		url:        url,
		httpClient: client,
		logger:     logger,
	}
}

// Enabled reports whether a webhook URL is configured.
func (t *Trigger) Enabled() bool {
	return t != nil && t.url != ""
}

// Notify posts the rebuild hook for the given game. The returned error is
// informational; callers log it and move on.
func (t *Trigger) Notify(ctx context.Context, gameID string) error {
	if !t.Enabled() {
		return nil
	}

	body, err := json.Marshal(map[string]string{"gameId": gameID})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		logging.Warn(t.logger, "rebuild webhook failed", "error", err)
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))

	if resp.StatusCode >= 300 {
		err := fmt.Errorf("rebuild webhook returned status %d", resp.StatusCode)
		logging.Warn(t.logger, "rebuild webhook failed", "error", err)
		return err
	}

	logging.Info(t.logger, "rebuild webhook fired", slog.String(logging.FieldGameID, gameID))
	return nil
}
