package get_availability

import (
	"context"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListForDay получает все не отменённые бронирования за UTC-окно дня
	ListForDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория блокировок расписания
type BlockRepository interface {
	// ListOverlapping получает блокировки, пересекающие окно, start_time ASC
	ListOverlapping(ctx context.Context, from, to time.Time) ([]*domain.BlockedInterval, error)
}

// FleetService интерфейс сервиса флота
type FleetService interface {
	// ListBoatSlotsForDay строит привязку лодок к смещениям с учетом квоты дня
	ListBoatSlotsForDay(ctx context.Context, day time.Time) ([]domain.BoatSlot, error)
}

// Cache интерфейс кеша ответов доступности
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
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
