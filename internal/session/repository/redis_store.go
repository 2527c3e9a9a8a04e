package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bellarosa/storefront/internal/session/domain"
)

// RedisStore persists session snapshots in Redis. Keys carry no TTL: the
// snapshot lives until the next write replaces it, matching the
// last-writer-wins contract of the session state.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a store backed by the given client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Write serializes the snapshot and stores it under key.
func (s *RedisStore) Write(ctx context.Context, key string, snapshot *domain.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.client.Set(ctx, key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

// Read fetches and deserializes the snapshot under key.
func (s *RedisStore) Read(ctx context.Context, key string) (*domain.Snapshot, error) {
	payload, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return &snap, nil
}
