package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"leafs-result-service/internal/domain"
	"leafs-result-service/internal/logging"
	"leafs-result-service/internal/metrics"
	"leafs-result-service/internal/providers"
	"leafs-result-service/internal/store"
)

const defaultInterval = time.Minute

// RecapGenerator produces narrative prose for a completed game.
type RecapGenerator interface {
	Generate(ctx context.Context, verdict domain.Verdict, detail domain.GameDetail) (string, error)
}

// RebuildNotifier fires the downstream rebuild hook after a completed cycle.
type RebuildNotifier interface {
	Notify(ctx context.Context, gameID string) error
}

// Poller drives the poll-cycle state machine on an interval: re-check the
// schedule, detect a newly completed game, run detail+recap+store, fire the
// rebuild hook.
type Poller struct {
	provider   providers.GameProvider
	results    store.ResultStore
	stateStore store.StateStore
	generator  RecapGenerator
	rebuild    RebuildNotifier
	teamCode   string
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	now        func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	LastState           CycleState
	LastCycle           time.Time
	LastDone            time.Time
	ConsecutiveFailures int
}

// IsReady reports whether the poller has completed at least one cycle.
func (s Status) IsReady() bool {
	return !s.LastCycle.IsZero()
}

// Config bundles the poller's collaborators.
type Config struct {
	Provider  providers.GameProvider
	Results   store.ResultStore
	State     store.StateStore
	Generator RecapGenerator
	Rebuild   RebuildNotifier
	TeamCode  string
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
	Interval  time.Duration
}

// New constructs a Poller with sane defaults.
func New(cfg Config) *Poller {
	interval := cfg.Interval
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider:   cfg.Provider,
		results:    cfg.Results,
		stateStore: cfg.State,
		generator:  cfg.Generator,
		rebuild:    cfg.Rebuild,
		teamCode:   cfg.TeamCode,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started",
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial cycle on boot so a finished game is picked up immediately.
		p.cycleOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.cycleOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RunOnce executes a single poll cycle and returns the state it finished in.
// Exposed for the boot cycle and for tests.
func (p *Poller) RunOnce(ctx context.Context) CycleState {
	return p.cycleOnce(ctx)
}

func (p *Poller) cycleOnce(ctx context.Context) CycleState {
	start := time.Now()
	state := p.runCycle(ctx)

	if p.metrics != nil {
		p.metrics.RecordPollCycle(string(state), time.Since(start), nil)
	}
	p.recordCycle(state, start)

	logging.Info(p.logger, "poll cycle complete",
		slog.String(logging.FieldCycleState, string(state)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return state
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordCycle(state CycleState, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastState = state
	p.status.LastCycle = at
	if state == StateDone {
		p.status.LastDone = at
		p.status.ConsecutiveFailures = 0
	} else if state == StateProcessing {
		p.status.ConsecutiveFailures++
	}
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.GameProvider {
	return p.provider
}
