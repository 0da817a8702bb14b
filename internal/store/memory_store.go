package store

import (
	"context"
	"sync"

	"leafs-result-service/internal/domain"
)

// MemoryStore keeps results and poll state in process memory. Used in tests
// and as the dev-mode backend.
type MemoryStore struct {
	mu      sync.RWMutex
	results map[string]domain.StoredResult
	state   domain.PollState
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		results: make(map[string]domain.StoredResult),
	}
}

// GetResult retrieves a stored result by game id.
func (s *MemoryStore) GetResult(ctx context.Context, gameID string) (domain.StoredResult, bool, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.results[gameID]
	return r, ok, nil
}

// PutResult stores a result under its game id.
func (s *MemoryStore) PutResult(ctx context.Context, result domain.StoredResult) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()

	s.results[result.GameID] = result
	return nil
}

// ListResultIDs returns the stored game ids.
func (s *MemoryStore) ListResultIDs(ctx context.Context) ([]string, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.results))
	for id := range s.results {
		ids = append(ids, id)
	}
	return ids, nil
}

// ListResults returns all stored results, newest game first.
func (s *MemoryStore) ListResults(ctx context.Context) ([]domain.StoredResult, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]domain.StoredResult, 0, len(s.results))
	for _, r := range s.results {
		results = append(results, r)
	}
	sortResultsByDateDesc(results)
	return results, nil
}

// LoadPollState returns the current poll state.
func (s *MemoryStore) LoadPollState(ctx context.Context) (domain.PollState, error) {
	_ = ctx
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state, nil
}

// SavePollState replaces the poll state.
func (s *MemoryStore) SavePollState(ctx context.Context, state domain.PollState) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return nil
}
