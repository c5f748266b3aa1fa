package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coffeecorner/pkg/logger"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps the key-value data in Redis, for deployments that already
// run one. Values persist for as long as the Redis instance does; durability
// depends on the server's persistence configuration.
type RedisStore struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisStore connects to the Redis instance at redisURL and verifies the
// connection with a short ping.
func NewRedisStore(redisURL string, log *logger.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %v", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	log.Info("Redis store connected", "addr", opt.Addr)
	return &RedisStore{client: client, logger: log.WithComponent("redis_store")}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	}
	if err != nil {
		s.logger.Error("Failed to read key", "key", key, "error", err)
		return "", fmt.Errorf("failed to read key %s: %v", key, err)
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		s.logger.Error("Failed to write key", "key", key, "error", err)
		return fmt.Errorf("failed to write key %s: %v", key, err)
	}
	return nil
}

func (s *RedisStore) Remove(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		s.logger.Error("Failed to remove key", "key", key, "error", err)
		return fmt.Errorf("failed to remove key %s: %v", key, err)
	}
	return nil
}

func (s *RedisStore) MultiSet(ctx context.Context, pairs map[string]string) error {
	pipe := s.client.Pipeline()
	for key, value := range pairs {
		pipe.Set(ctx, key, value, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Error("Failed to execute batch write", "error", err)
		return fmt.Errorf("failed to execute batch write: %v", err)
	}
	return nil
}

func (s *RedisStore) MultiRemove(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.logger.Error("Failed to remove keys", "error", err)
		return fmt.Errorf("failed to remove keys: %v", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
