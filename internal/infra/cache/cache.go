package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss возвращается, когда ключ не найден или просрочен
var ErrCacheMiss = errors.New("cache: miss")

// Store абстракция над кешем коротких ответов.
// Вычисление доступности никогда не зависит от наличия кеша:
// любая ошибка стора трактуется вызывающим кодом как промах.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}
