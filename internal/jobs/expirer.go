// Package jobs содержит фоновые задачи сервиса
package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/metrics"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ExpireStaleHolds отменяет неоплаченные PENDING старше указанного момента
	ExpireStaleHolds(ctx context.Context, before time.Time) ([]*domain.Booking, error)
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

// HoldExpirer периодически снимает просроченные неоплаченные холды,
// возвращая их места в доступность
type HoldExpirer struct {
	bookingRepo BookingRepository
	cache       Cache
	notifier    PlanningNotifier
	holdTTL     time.Duration
	metrics     *metrics.Metrics
	logger      Logger

	cron *cron.Cron
}

// NewHoldExpirer создает новый экземпляр задачи
func NewHoldExpirer(
	bookingRepo BookingRepository,
	c Cache,
	notifier PlanningNotifier,
	holdTTL time.Duration,
	m *metrics.Metrics,
	logger Logger,
) *HoldExpirer {
	return &HoldExpirer{
		bookingRepo: bookingRepo,
		cache:       c,
		notifier:    notifier,
		holdTTL:     holdTTL,
		metrics:     m,
		logger:      logger,
	}
}

// Start запускает задачу по cron-расписанию
func (e *HoldExpirer) Start(schedule string) error {
	e.cron = cron.New()
	if _, err := e.cron.AddFunc(schedule, e.runOnce); err != nil {
		return err
	}
	e.cron.Start()
	e.logger.Info("HoldExpirer: started with schedule %q, hold TTL %s", schedule, e.holdTTL)
	return nil
}

// Stop останавливает задачу и дожидается завершения текущего запуска
func (e *HoldExpirer) Stop() {
	if e.cron != nil {
		<-e.cron.Stop().Done()
	}
}

func (e *HoldExpirer) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := e.Run(ctx); err != nil {
		e.logger.Error("HoldExpirer: run failed: %v", err)
	}
}

// Run выполняет один проход снятия просроченных холдов
func (e *HoldExpirer) Run(ctx context.Context) error {
	cutoff := time.Now().UTC().Add(-e.holdTTL)

	expired, err := e.bookingRepo.ExpireStaleHolds(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(expired) == 0 {
		return nil
	}

	// Кеш сбрасывается по каждой затронутой дате один раз
	dates := make(map[string]struct{})
	for _, b := range expired {
		dates[b.Date.Format(domain.DateFormat)] = struct{}{}
	}
	for date := range dates {
		if err := e.cache.DeleteByPrefix(ctx, cache.AvailabilityDatePrefix(date)); err != nil {
			e.logger.Warn("HoldExpirer: failed to invalidate availability cache for %s: %v", date, err)
		}
	}

	e.notifier.PlanningChanged(ctx)
	if e.metrics != nil {
		e.metrics.HoldsExpired.Add(float64(len(expired)))
	}

	e.logger.Info("HoldExpirer: released %d stale holds across %d dates", len(expired), len(dates))
	return nil
}
