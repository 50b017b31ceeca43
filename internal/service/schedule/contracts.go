package schedule

import (
	"context"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// BlockRepository интерфейс репозитория блокировок
type BlockRepository interface {
	Create(ctx context.Context, b *domain.BlockedInterval) (*domain.BlockedInterval, error)
	GetByID(ctx context.Context, id int64) (*domain.BlockedInterval, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, from time.Time) ([]*domain.BlockedInterval, error)
}

// Cache интерфейс для инвалидации кеша доступности
type Cache interface {
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// PlanningNotifier сигнал интерфейсу планинга об изменении расписания
type PlanningNotifier interface {
	PlanningChanged(ctx context.Context)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
