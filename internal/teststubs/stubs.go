package teststubs

import (
	"context"
	"sync/atomic"

	"leafs-result-service/internal/domain"
)

// StubProvider is a test double for providers.GameProvider.
type StubProvider struct {
	Schedule      domain.Schedule
	ScheduleErr   error
	Detail        domain.GameDetail
	DetailErr     error
	ScheduleCalls atomic.Int32
	DetailCalls   atomic.Int32
	Notify        chan struct{}
}

// FetchSeasonSchedule returns the configured schedule while tracking calls.
func (s *StubProvider) FetchSeasonSchedule(ctx context.Context, teamCode string) (domain.Schedule, error) {
	_ = ctx
	_ = teamCode
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.ScheduleCalls.Add(1)
	return s.Schedule, s.ScheduleErr
}

// FetchGameDetail returns the configured detail while tracking calls.
func (s *StubProvider) FetchGameDetail(ctx context.Context, gameID int) (domain.GameDetail, error) {
	_ = ctx
	_ = gameID
	s.DetailCalls.Add(1)
	return s.Detail, s.DetailErr
}

// StubGenerator is a test double for poller.RecapGenerator.
type StubGenerator struct {
	Text  string
	Err   error
	Calls atomic.Int32
}

// Generate returns the configured text and error while tracking calls.
func (g *StubGenerator) Generate(ctx context.Context, verdict domain.Verdict, detail domain.GameDetail) (string, error) {
	_ = ctx
	_ = verdict
	_ = detail
	g.Calls.Add(1)
	return g.Text, g.Err
}

// StubNotifier is a test double for poller.RebuildNotifier.
type StubNotifier struct {
	Err     error
	Calls   atomic.Int32
	GameIDs []string
}

// Notify records the game id while tracking calls.
func (n *StubNotifier) Notify(ctx context.Context, gameID string) error {
	_ = ctx
	n.Calls.Add(1)
	n.GameIDs = append(n.GameIDs, gameID)
	return n.Err
}
