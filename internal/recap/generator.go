package recap

import (
	"context"
	"errors"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"leafs-result-service/internal/domain"
	"leafs-result-service/internal/logging"
	"leafs-result-service/internal/metrics"
)

// ErrGenerationDisabled is returned when no API credential is configured.
// Callers treat it like any other generation failure: skip persistence and
// retry on a later cycle.
var ErrGenerationDisabled = errors.New("recap generation disabled: no API key configured")

// completionClient is the seam over the OpenAI SDK used for testing.
type completionClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Config controls the generator backend.
type Config struct {
	APIKey string
	Model  string
}

// Generator turns a verdict plus game detail into narrative prose via a
// hosted text-generation model. It never retries; the poller's re-poll
// cadence is the retry policy.
type Generator struct {
	client  completionClient
	model   string
	logger  *slog.Logger
	metrics *metrics.Recorder
}

// NewGenerator constructs a Generator. An empty API key yields a disabled
// generator rather than an error, so a missing credential degrades the
// feature instead of failing startup.
func NewGenerator(cfg Config, logger *slog.Logger, recorder *metrics.Recorder) *Generator {
	g := &Generator{
		model:   cfg.Model,
		logger:  logger,
		metrics: recorder,
	}
	if cfg.APIKey != "" {
		g.client = openai.NewClient(cfg.APIKey)
	}
	return g
}

// Enabled reports whether a credential is configured.
func (g *Generator) Enabled() bool {
	return g != nil && g.client != nil
}

// Generate builds the prompt and requests a completion. Any failure returns
// an error and no text; the caller must not persist a result in that case.
func (g *Generator) Generate(ctx context.Context, verdict domain.Verdict, detail domain.GameDetail) (string, error) {
	if !g.Enabled() {
		return "", ErrGenerationDisabled
	}

	prompt := BuildPrompt(verdict, detail)

	start := time.Now()
	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if g.metrics != nil {
		g.metrics.RecordGeneration(time.Since(start), err)
	}
	if err != nil {
		logging.Warn(g.logger, "recap generation failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		err := errors.New("recap generation returned no content")
		logging.Warn(g.logger, "recap generation failed", "error", err)
		return "", err
	}

	return resp.Choices[0].Message.Content, nil
}
