package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"leafs-result-service/internal/domain"
)

const (
	resultsDir    = "results"
	pollStateFile = "pollstate.json"
)

// FSStore persists results as one JSON file per game under
// {base}/results/{gameID}.json, plus {base}/pollstate.json. Writes go through
// a tmp file and rename so a crashed write never leaves a torn record.
type FSStore struct {
	basePath string
}

// NewFSStore constructs a filesystem-backed store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// GetResult reads a stored result by game id.
func (s *FSStore) GetResult(ctx context.Context, gameID string) (domain.StoredResult, bool, error) {
	_ = ctx
	var result domain.StoredResult
	err := s.decodeFile(s.resultPath(gameID), &result)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.StoredResult{}, false, nil
		}
		return domain.StoredResult{}, false, err
	}
	return result, true, nil
}

// PutResult writes a result record atomically.
func (s *FSStore) PutResult(ctx context.Context, result domain.StoredResult) error {
	_ = ctx
	if result.GameID == "" {
		return errors.New("result game id required")
	}
	return s.writeAtomic(s.resultPath(result.GameID), result)
}

// ListResultIDs returns the game ids present on disk.
func (s *FSStore) ListResultIDs(ctx context.Context) ([]string, error) {
	_ = ctx
	entries, err := os.ReadDir(filepath.Join(s.basePath, resultsDir))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(name, ".json"))
	}
	return ids, nil
}

// ListResults loads every record, newest game first.
func (s *FSStore) ListResults(ctx context.Context) ([]domain.StoredResult, error) {
	ids, err := s.ListResultIDs(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.StoredResult, 0, len(ids))
	for _, id := range ids {
		var r domain.StoredResult
		if err := s.decodeFile(s.resultPath(id), &r); err != nil {
			return nil, fmt.Errorf("read result %s: %w", id, err)
		}
		results = append(results, r)
	}
	sortResultsByDateDesc(results)
	return results, nil
}

// LoadPollState reads the persisted poll state; a missing file is the zero state.
func (s *FSStore) LoadPollState(ctx context.Context) (domain.PollState, error) {
	_ = ctx
	var state domain.PollState
	err := s.decodeFile(filepath.Join(s.basePath, pollStateFile), &state)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return domain.PollState{}, err
	}
	return state, nil
}

// SavePollState writes the poll state atomically.
func (s *FSStore) SavePollState(ctx context.Context, state domain.PollState) error {
	_ = ctx
	return s.writeAtomic(filepath.Join(s.basePath, pollStateFile), state)
}

func (s *FSStore) resultPath(gameID string) string {
	return filepath.Join(s.basePath, resultsDir, gameID+".json")
}

func (s *FSStore) decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}

func (s *FSStore) writeAtomic(target string, payload any) error {
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}
