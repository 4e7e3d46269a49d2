package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"marketplace/storefront/internal/domain"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore persists the cart as a JSON payload under a single redis key.
func NewRedisStore(client *redis.Client, key string) Store {
	return &redisStore{
		client: client,
		key:    key,
	}
}

func (s *redisStore) Load(ctx context.Context) ([]domain.CartLine, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // nothing stored yet
		}
		return nil, fmt.Errorf("failed to get cart key %s: %w", s.key, err)
	}

	var lines []domain.CartLine
	if err := json.Unmarshal([]byte(val), &lines); err != nil {
		return nil, fmt.Errorf("failed to decode cart key %s: %w", s.key, err)
	}
	return lines, nil
}

func (s *redisStore) Save(ctx context.Context, lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil { // no expiration
		return fmt.Errorf("failed to set cart key %s: %w", s.key, err)
	}
	return nil
}
