package poller

import (
	"context"
	"log/slog"
	"time"

	"leafs-result-service/internal/domain"
	"leafs-result-service/internal/logging"
)

// CycleState is the state a poll cycle finished in.
type CycleState string

const (
	// StateIdleWaiting: the next game's start time is known and in the future.
	StateIdleWaiting CycleState = "idle_waiting"
	// StateIdleRecentStart: a game started within the recent-start window and
	// is presumed still in progress.
	StateIdleRecentStart CycleState = "idle_recent_start"
	// StatePolling: the schedule was (or was meant to be) re-checked but no
	// new completed game could be processed this cycle.
	StatePolling CycleState = "polling"
	// StateProcessing: a new completed game was identified but the pipeline
	// did not finish; the next cycle retries.
	StateProcessing CycleState = "processing"
	// StateDone: the cycle completed, advancing the processed-game marker.
	StateDone CycleState = "done"
)

// recentStartWindow is how long after puck drop the poller assumes the game
// is still running and skips upstream calls entirely.
const recentStartWindow = 90 * time.Minute

// runCycle executes one poll cycle. It never returns an error: every failure
// is logged, converted into a benign cycle state and retried on the next
// tick. Cross-cycle state lives in the state store; the store's
// read-after-write consistency is what keeps overlapping cycles correct.
func (p *Poller) runCycle(ctx context.Context) CycleState {
	now := p.now().UTC()

	state, err := p.stateStore.LoadPollState(ctx)
	if err != nil {
		logging.Warn(p.logger, "poll state load failed, assuming empty state", "error", err)
		state = domain.PollState{}
	}

	if state.NextGameStart != nil {
		start := state.NextGameStart.UTC()
		if now.Before(start) {
			return StateIdleWaiting
		}
		if now.Before(start.Add(recentStartWindow)) {
			return StateIdleRecentStart
		}
	}

	schedule, err := p.provider.FetchSeasonSchedule(ctx, p.teamCode)
	if err != nil {
		logging.Warn(p.logger, "schedule fetch failed, skipping cycle", "error", err)
		return StatePolling
	}

	if schedule.AnyInProgress() {
		logging.Info(p.logger, "game in progress, waiting for it to end")
		return StatePolling
	}

	latest, ok := schedule.LatestCompleted()
	if !ok {
		return StatePolling
	}

	currentKey := latest.Key()
	if currentKey == state.LastProcessedGameKey {
		p.persistState(ctx, state, currentKey, schedule)
		return StateDone
	}

	if !p.processGame(ctx, latest) {
		return StateProcessing
	}

	p.persistState(ctx, state, currentKey, schedule)

	if err := p.rebuild.Notify(ctx, latest.IDString()); err != nil {
		logging.Warn(p.logger, "rebuild trigger failed", "error", err)
	}

	return StateDone
}

// processGame runs the expensive pipeline for a newly completed game:
// existence check, detail fetch, verdict, recap, persist. Returns false when
// the cycle must retry later without advancing the processed-game marker.
// The expensive path runs at most once successfully per game id; a record
// already in the store short-circuits everything.
func (p *Poller) processGame(ctx context.Context, game domain.Game) bool {
	gameID := game.IDString()

	if _, found, err := p.results.GetResult(ctx, gameID); err != nil {
		logging.Warn(p.logger, "result lookup failed, skipping cycle",
			slog.String(logging.FieldGameID, gameID), "error", err)
		return false
	} else if found {
		logging.Info(p.logger, "result already stored, skipping generation",
			slog.String(logging.FieldGameID, gameID))
		return true
	}

	detail, err := p.provider.FetchGameDetail(ctx, game.ID)
	if err != nil {
		logging.Warn(p.logger, "detail fetch failed, will retry next cycle",
			slog.String(logging.FieldGameID, gameID), "error", err)
		return false
	}

	verdict := domain.DeriveVerdict(game, detail, p.teamCode)

	recapText, err := p.generator.Generate(ctx, verdict, detail)
	if err != nil {
		// No record is written and the processed-game marker is not advanced,
		// so every subsequent cycle re-runs the pipeline until generation
		// succeeds. Deliberate: the re-poll cadence is the retry policy.
		logging.Warn(p.logger, "recap generation failed, will retry next cycle",
			slog.String(logging.FieldGameID, gameID), "error", err)
		return false
	}

	result := domain.NewStoredResult(game, verdict, recapText)
	if err := p.results.PutResult(ctx, result); err != nil {
		logging.Error(p.logger, "result store write failed", err,
			slog.String(logging.FieldGameID, gameID))
		return false
	}

	logging.Info(p.logger, "stored game result",
		slog.String(logging.FieldGameID, gameID),
		slog.String(logging.FieldDate, game.Date),
		slog.Bool("lost", verdict.Lost),
	)
	return true
}

// persistState advances the processed-game marker and refreshes the next
// known start instant from the schedule's next upcoming game.
func (p *Poller) persistState(ctx context.Context, state domain.PollState, currentKey string, schedule domain.Schedule) {
	state.LastProcessedGameKey = currentKey
	state.NextGameStart = nil
	if next, ok := schedule.NextUpcoming(); ok && !next.StartTime.IsZero() {
		start := next.StartTime
		state.NextGameStart = &start
	}

	if err := p.stateStore.SavePollState(ctx, state); err != nil {
		logging.Warn(p.logger, "poll state save failed", "error", err)
	}
}
