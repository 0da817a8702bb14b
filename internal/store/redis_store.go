package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"leafs-result-service/internal/domain"
)

// Redis key namespaces: one for result records, one for the scalar poll state.
const (
	resultKeyPrefix = "result:"
	resultIndexKey  = "result:ids"
	pollStateKey    = "pollstate"
)

// RedisStore persists results and poll state in Redis as JSON values. An
// index set tracks known game ids so listing avoids a keyspace scan.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore constructs a store over an existing Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// GetResult retrieves a stored result by game id.
func (s *RedisStore) GetResult(ctx context.Context, gameID string) (domain.StoredResult, bool, error) {
	b, err := s.client.Get(ctx, resultKeyPrefix+gameID).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.StoredResult{}, false, nil
	}
	if err != nil {
		return domain.StoredResult{}, false, err
	}

	var result domain.StoredResult
	if err := json.Unmarshal(b, &result); err != nil {
		return domain.StoredResult{}, false, fmt.Errorf("unmarshal result %s: %w", gameID, err)
	}
	return result, true, nil
}

// PutResult stores a result record and registers its id in the index set.
func (s *RedisStore) PutResult(ctx context.Context, result domain.StoredResult) error {
	if result.GameID == "" {
		return errors.New("result game id required")
	}
	b, err := json.Marshal(result)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, resultKeyPrefix+result.GameID, b, 0)
	pipe.SAdd(ctx, resultIndexKey, result.GameID)
	_, err = pipe.Exec(ctx)
	return err
}

// ListResultIDs returns the indexed game ids.
func (s *RedisStore) ListResultIDs(ctx context.Context) ([]string, error) {
	ids, err := s.client.SMembers(ctx, resultIndexKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	return ids, err
}

// ListResults loads every indexed record, newest game first. Ids whose record
// is missing (index drift) are skipped.
func (s *RedisStore) ListResults(ctx context.Context) ([]domain.StoredResult, error) {
	ids, err := s.ListResultIDs(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.StoredResult, 0, len(ids))
	for _, id := range ids {
		r, ok, err := s.GetResult(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			results = append(results, r)
		}
	}
	sortResultsByDateDesc(results)
	return results, nil
}

// LoadPollState reads the persisted poll state; a missing key is the zero state.
func (s *RedisStore) LoadPollState(ctx context.Context) (domain.PollState, error) {
	b, err := s.client.Get(ctx, pollStateKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.PollState{}, nil
	}
	if err != nil {
		return domain.PollState{}, err
	}

	var state domain.PollState
	if err := json.Unmarshal(b, &state); err != nil {
		return domain.PollState{}, fmt.Errorf("unmarshal poll state: %w", err)
	}
	return state, nil
}

// SavePollState writes the poll state.
func (s *RedisStore) SavePollState(ctx context.Context, state domain.PollState) error {
	b, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, pollStateKey, b, 0).Err()
}
