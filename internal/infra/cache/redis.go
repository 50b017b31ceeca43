package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis кеш поверх Redis
type Redis struct {
	client *redis.Client
}

// NewRedis создает кеш поверх существующего клиента Redis
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *Redis) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

// DeleteByPrefix удаляет все ключи с указанным префиксом через SCAN.
// Ключей доступности на одну дату немного (комбинации язык+состав группы),
// поэтому SCAN с шаблоном достаточно дешев.
func (r *Redis) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := r.client.Scan(ctx, 0, prefix+"*", 0).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	return r.Delete(ctx, keys...)
}
