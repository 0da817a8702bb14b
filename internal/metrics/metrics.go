package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type generationStats struct {
	calls    int
	errors   int
	lastCall time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// recap generation and poll cycles. It mirrors everything into OpenTelemetry
// instruments when telemetry is enabled.
type Recorder struct {
	mu         sync.Mutex
	stats      map[string]*providerStats
	generation generationStats
	cycles     map[string]int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:  make(map[string]*providerStats),
		cycles: make(map[string]int),
		otel:   otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordGeneration tracks a recap-generation attempt.
func (r *Recorder) RecordGeneration(duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.generation.calls++
	r.generation.lastCall = duration
	if err != nil {
		r.generation.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGeneration(duration, err)
	}
}

// RecordPollCycle tracks one poll cycle and the state it finished in.
func (r *Recorder) RecordPollCycle(state string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.cycles[state]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPollCycle(state, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureStats(provider).calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ensureStats(provider).errors
}

// GenerationCalls returns the total recap-generation attempts.
func (r *Recorder) GenerationCalls() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation.calls
}

// PollCycles returns how many cycles finished in the given state.
func (r *Recorder) PollCycles(state string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cycles[state]
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}
