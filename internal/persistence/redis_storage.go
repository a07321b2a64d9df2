package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/petrijr/passo/pkg/api"
)

// RedisStorage is an api.Storage backed by Redis. Every key is stored
// under a configurable prefix so several applications can share one
// database.
type RedisStorage struct {
	client *redis.Client
	prefix string
}

// Ensure RedisStorage implements the interface.
var _ api.Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a RedisStorage.
// prefix is optional but recommended (e.g. "passo:").
func NewRedisStorage(client *redis.Client, prefix string) *RedisStorage {
	if prefix == "" {
		prefix = "passo:"
	}
	return &RedisStorage{
		client: client,
		prefix: prefix,
	}
}

func (s *RedisStorage) key(key string) string {
	return s.prefix + key
}

func (s *RedisStorage) Get(key string) (string, error) {
	value, err := s.client.Get(context.Background(), s.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", api.ErrKeyNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *RedisStorage) Set(key, value string) error {
	return s.client.Set(context.Background(), s.key(key), value, 0).Err()
}

func (s *RedisStorage) Delete(key string) error {
	return s.client.Del(context.Background(), s.key(key)).Err()
}
