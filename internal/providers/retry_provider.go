package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"leafs-result-service/internal/domain"
	"leafs-result-service/internal/logging"
	"leafs-result-service/internal/metrics"
)

const (
	defaultInitialBackoff = 200 * time.Millisecond
	defaultMaxElapsed     = 5 * time.Second
)

// retryingProvider wraps a GameProvider with exponential backoff. Retries are
// bounded well below the poll interval; a cycle that still fails simply waits
// for the next one.
type retryingProvider struct {
	inner      GameProvider
	logger     *slog.Logger
	metrics    *metrics.Recorder
	name       string
	initial    time.Duration
	maxElapsed time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Zero durations
// fall back to defaults.
func NewRetryingProvider(inner GameProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, initial, maxElapsed time.Duration) GameProvider {
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	if maxElapsed <= 0 {
		maxElapsed = defaultMaxElapsed
	}
	return &retryingProvider{
		inner:      inner,
		logger:     logger,
		metrics:    recorder,
		name:       name,
		initial:    initial,
		maxElapsed: maxElapsed,
	}
}

func (r *retryingProvider) FetchSeasonSchedule(ctx context.Context, teamCode string) (domain.Schedule, error) {
	var schedule domain.Schedule
	err := r.retry(ctx, "schedule", func() error {
		var err error
		schedule, err = r.inner.FetchSeasonSchedule(ctx, teamCode)
		return err
	})
	return schedule, err
}

func (r *retryingProvider) FetchGameDetail(ctx context.Context, gameID int) (domain.GameDetail, error) {
	var detail domain.GameDetail
	err := r.retry(ctx, "detail", func() error {
		var err error
		detail, err = r.inner.FetchGameDetail(ctx, gameID)
		return err
	})
	return detail, err
}

func (r *retryingProvider) retry(ctx context.Context, op string, fn func() error) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initial
	policy.MaxElapsedTime = r.maxElapsed

	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		start := time.Now()
		err := fn()
		if r.metrics != nil {
			r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
		}
		if err != nil {
			logging.Warn(r.logger, "provider fetch retry",
				slog.String("op", op),
				slog.Int("attempt", attempt),
				"error", err,
			)
		}
		return err
	}, backoff.WithContext(policy, ctx))

	if err != nil {
		logging.Warn(r.logger, "provider fetch failed",
			slog.String("op", op),
			slog.Int("attempts", attempt),
			"error", err,
		)
	}
	return err
}
