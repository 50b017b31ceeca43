package bookings

import (
	"context"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByPublicReference(ctx context.Context, ref string) (*domain.Booking, error)
	ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
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
