package providers

import (
	"context"

	"leafs-result-service/internal/domain"
)

// ScheduleProvider fetches the season schedule for a team, normalized to
// domain games in chronological order.
type ScheduleProvider interface {
	FetchSeasonSchedule(ctx context.Context, teamCode string) (domain.Schedule, error)
}

// DetailProvider fetches the per-game summary for a completed game.
// Implementations are partial-failure tolerant: a failed sub-fetch leaves its
// section empty and sets the matching Partial flag instead of erroring.
type DetailProvider interface {
	FetchGameDetail(ctx context.Context, gameID int) (domain.GameDetail, error)
}

// GameProvider combines both provider capabilities.
type GameProvider interface {
	ScheduleProvider
	DetailProvider
}
