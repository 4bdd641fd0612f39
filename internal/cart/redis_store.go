package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const keyPrefix = "cart:"

// RedisStore persists cart state as JSON under "cart:<id>" with a sliding TTL,
// so an abandoned cart eventually expires on its own.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{rdb: rdb, ttl: ttl}, nil
}

func (s *RedisStore) Load(ctx context.Context, cartID string) (State, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+cartID).Result()
	if err == redis.Nil {
		return State{}, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("failed to load cart: %w", err)
	}

	var state State
	if err := json.Unmarshal([]byte(val), &state); err != nil {
		return State{}, fmt.Errorf("failed to unmarshal cart state: %w", err)
	}
	return state, nil
}

func (s *RedisStore) Save(ctx context.Context, cartID string, state State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal cart state: %w", err)
	}
	return s.rdb.Set(ctx, keyPrefix+cartID, data, s.ttl).Err()
}

func (s *RedisStore) Delete(ctx context.Context, cartID string) error {
	return s.rdb.Del(ctx, keyPrefix+cartID).Err()
}
