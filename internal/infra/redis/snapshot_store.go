package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"trivia-cli/internal/domain"
)

const snapshotKey = "quiz:state"

// SnapshotStore keeps the session snapshot in Redis under a single key.
// Useful when the quiz should survive not just a restart but the machine it
// ran on (e.g. playing from more than one box against one Redis).
type SnapshotStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotStore builds a store. A non-positive ttl means no expiry.
func NewSnapshotStore(client *redis.Client, ttl time.Duration) *SnapshotStore {
	return &SnapshotStore{client: client, ttl: ttl}
}

func (s *SnapshotStore) Save(ctx context.Context, state domain.QuizState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := s.client.Set(ctx, snapshotKey, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("set snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) Load(ctx context.Context) (domain.QuizState, bool, error) {
	data, err := s.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.QuizState{}, false, nil
		}
		return domain.QuizState{}, false, fmt.Errorf("get snapshot: %w", err)
	}

	var state domain.QuizState
	if err := json.Unmarshal(data, &state); err != nil {
		// Malformed content reads as absent, same as the file store.
		return domain.QuizState{}, false, nil
	}
	return state, true, nil
}

func (s *SnapshotStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("del snapshot: %w", err)
	}
	return nil
}
