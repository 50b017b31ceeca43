package fleet

import (
	"context"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// BoatRepository интерфейс репозитория флота
type BoatRepository interface {
	ListActive(ctx context.Context) ([]*domain.Boat, error)
	List(ctx context.Context) ([]*domain.Boat, error)
	GetByID(ctx context.Context, id int64) (*domain.Boat, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BoatStatus) error
}

// QuotaRepository интерфейс репозитория дневных квот
type QuotaRepository interface {
	GetForDay(ctx context.Context, day time.Time) (*domain.DailyBoatQuota, error)
	Upsert(ctx context.Context, q *domain.DailyBoatQuota) (*domain.DailyBoatQuota, error)
	Delete(ctx context.Context, day time.Time) error
}

// Cache интерфейс кеша списка лодок
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
