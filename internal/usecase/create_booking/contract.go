package create_booking

import (
	"context"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// ListConflicting получает активные бронирования лодки, пересекающие окно.
	// Внутри транзакции блокирует строки FOR UPDATE.
	ListConflicting(ctx context.Context, boatID int64, from, to time.Time) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlockedInterval, error)
}

// FleetService интерфейс сервиса флота
type FleetService interface {
	ListBoatSlotsForDay(ctx context.Context, day time.Time) ([]domain.BoatSlot, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache интерфейс для инвалидации кеша доступности
type Cache interface {
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// PlanningNotifier сигнал интерфейсу планинга об изменении расписания
type PlanningNotifier interface {
	PlanningChanged(ctx context.Context)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
