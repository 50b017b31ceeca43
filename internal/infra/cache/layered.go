package cache

import (
	"context"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/pkg/metrics"
)

// Layered кеш из двух уровней: primary (Redis) и fallback (память).
// Ошибки primary не поднимаются наверх: чтение падает на fallback,
// запись идет в оба уровня. Метрики считают попадания по уровню.
type Layered struct {
	primary  Store
	fallback Store
	metrics  *metrics.Metrics
}

// NewLayered создает двухуровневый кеш. metrics может быть nil.
func NewLayered(primary, fallback Store, m *metrics.Metrics) *Layered {
	return &Layered{primary: primary, fallback: fallback, metrics: m}
}

func (l *Layered) Get(ctx context.Context, key string) ([]byte, error) {
	if l.primary != nil {
		value, err := l.primary.Get(ctx, key)
		if err == nil {
			l.hit("redis")
			return value, nil
		}
		l.miss("redis")
	}

	value, err := l.fallback.Get(ctx, key)
	if err != nil {
		l.miss("memory")
		return nil, ErrCacheMiss
	}

	l.hit("memory")
	return value, nil
}

func (l *Layered) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if l.primary != nil {
		// Ошибка Redis не мешает записи в память
		_ = l.primary.Set(ctx, key, value, ttl)
	}
	return l.fallback.Set(ctx, key, value, ttl)
}

func (l *Layered) Delete(ctx context.Context, keys ...string) error {
	if l.primary != nil {
		_ = l.primary.Delete(ctx, keys...)
	}
	return l.fallback.Delete(ctx, keys...)
}

func (l *Layered) DeleteByPrefix(ctx context.Context, prefix string) error {
	if l.primary != nil {
		_ = l.primary.DeleteByPrefix(ctx, prefix)
	}
	return l.fallback.DeleteByPrefix(ctx, prefix)
}

func (l *Layered) hit(backend string) {
	if l.metrics != nil {
		l.metrics.CacheHits.WithLabelValues(backend).Inc()
	}
}

func (l *Layered) miss(backend string) {
	if l.metrics != nil {
		l.metrics.CacheMisses.WithLabelValues(backend).Inc()
	}
}
