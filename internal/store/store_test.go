package store

import (
	"context"
	"testing"
	"time"

	"leafs-result-service/internal/domain"
)

func storedResult(id, date string) domain.StoredResult {
	return domain.StoredResult{
		GameID:        id,
		GameDate:      date,
		Opponent:      "BOS",
		TrackedScore:  4,
		OpponentScore: 2,
		RecapText:     "a dry recap",
	}
}

// Both backends must satisfy the same contract; the fs backend additionally
// gets persistence-across-restart coverage in fs_store_test.go.
func storeBackends(t *testing.T) map[string]Store {
	t.Helper()
	return map[string]Store{
		"memory": NewMemoryStore(),
		"fs":     NewFSStore(t.TempDir()),
	}
}

func TestStoreGetAbsentResult(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.GetResult(context.Background(), "2024020500")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok {
				t.Fatal("expected absent result")
			}
		})
	}
}

func TestStorePutThenGetRoundTrip(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			want := storedResult("2024020500", "2024-11-16")

			if err := s.PutResult(ctx, want); err != nil {
				t.Fatalf("put: %v", err)
			}

			got, ok, err := s.GetResult(ctx, "2024020500")
			if err != nil || !ok {
				t.Fatalf("get: ok=%v err=%v", ok, err)
			}
			if got != want {
				t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestStoreListResultsNewestFirst(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, r := range []domain.StoredResult{
				storedResult("2024020400", "2024-11-10"),
				storedResult("2024020600", "2024-11-20"),
				storedResult("2024020500", "2024-11-16"),
			} {
				if err := s.PutResult(ctx, r); err != nil {
					t.Fatalf("put %s: %v", r.GameID, err)
				}
			}

			results, err := s.ListResults(ctx)
			if err != nil {
				t.Fatalf("list: %v", err)
			}
			if len(results) != 3 {
				t.Fatalf("expected 3 results, got %d", len(results))
			}
			wantOrder := []string{"2024020600", "2024020500", "2024020400"}
			for i, want := range wantOrder {
				if results[i].GameID != want {
					t.Fatalf("position %d: got %s, want %s", i, results[i].GameID, want)
				}
			}

			ids, err := s.ListResultIDs(ctx)
			if err != nil {
				t.Fatalf("list ids: %v", err)
			}
			if len(ids) != 3 {
				t.Fatalf("expected 3 ids, got %d", len(ids))
			}
		})
	}
}

func TestStorePollStateRoundTrip(t *testing.T) {
	for name, s := range storeBackends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			state, err := s.LoadPollState(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if state.LastProcessedGameKey != "" || state.NextGameStart != nil {
				t.Fatalf("expected zero state, got %+v", state)
			}

			next := time.Date(2024, 11, 17, 0, 0, 0, 0, time.UTC)
			want := domain.PollState{LastProcessedGameKey: "2024020500-2024-11-16", NextGameStart: &next}
			if err := s.SavePollState(ctx, want); err != nil {
				t.Fatalf("save: %v", err)
			}

			got, err := s.LoadPollState(ctx)
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			if got.LastProcessedGameKey != want.LastProcessedGameKey {
				t.Fatalf("key mismatch: %q", got.LastProcessedGameKey)
			}
			if got.NextGameStart == nil || !got.NextGameStart.Equal(next) {
				t.Fatalf("next start mismatch: %v", got.NextGameStart)
			}
		})
	}
}

func TestSortResultsByDateDescBreaksTiesByID(t *testing.T) {
	results := []domain.StoredResult{
		{GameID: "100", GameDate: "2024-11-16"},
		{GameID: "200", GameDate: "2024-11-16"},
	}
	sortResultsByDateDesc(results)
	if results[0].GameID != "200" {
		t.Fatalf("expected id tiebreak desc, got %s first", results[0].GameID)
	}
}
