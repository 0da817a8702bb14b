package store

import (
	"context"
	"sort"

	"leafs-result-service/internal/domain"
)

// ResultStore persists one record per processed game, keyed by game id.
// Append-only from the system's perspective: no update or delete operations
// are exposed. Implementations must provide read-after-write consistency
// within a single instance; the poller's check-before-write depends on it.
type ResultStore interface {
	GetResult(ctx context.Context, gameID string) (domain.StoredResult, bool, error)
	PutResult(ctx context.Context, result domain.StoredResult) error
	ListResultIDs(ctx context.Context) ([]string, error)
	// ListResults returns all records ordered by game date descending.
	ListResults(ctx context.Context) ([]domain.StoredResult, error)
}

// StateStore persists the poller's small cross-cycle state.
type StateStore interface {
	LoadPollState(ctx context.Context) (domain.PollState, error)
	SavePollState(ctx context.Context, state domain.PollState) error
}

// Store combines both persistence capabilities; every backend implements it.
type Store interface {
	ResultStore
	StateStore
}

// sortResultsByDateDesc orders records newest first, breaking date ties by
// game id so the ordering is stable across backends.
func sortResultsByDateDesc(results []domain.StoredResult) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].GameDate != results[j].GameDate {
			return results[i].GameDate > results[j].GameDate
		}
		return results[i].GameID > results[j].GameID
	})
}
