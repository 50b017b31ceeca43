package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
	bookingRepo "github.com/kalicatt/boat-booking-saas-sub003/internal/infra/storage/booking"
	"github.com/kalicatt/boat-booking-saas-sub003/pkg/metrics"
)

// Service сервис для работы с существующими бронированиями
// (создание нового идет через отдельный usecase)
type Service struct {
	bookingRepo BookingRepository
	cache       Cache
	notifier    PlanningNotifier
	metrics     *metrics.Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	c Cache,
	notifier PlanningNotifier,
	m *metrics.Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cache:       c,
		notifier:    notifier,
		metrics:     m,
		logger:      logger,
	}
}

// GetByID получает бронирование по UUID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// GetByPublicReference получает бронирование по публичной ссылке
func (s *Service) GetByPublicReference(ctx context.Context, ref string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByPublicReference(ctx, ref)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByPublicReference: booking ref=%s not found", ref)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByPublicReference: repository error for ref=%s: %v", ref, err)
		return nil, fmt.Errorf("%w: GetByPublicReference - repository error: %v", ErrInternal, err)
	}
	return booking, nil
}

// Cancel отменяет бронирование, сбрасывает кеш доступности на его дату
// и уведомляет планинг
func (s *Service) Cancel(ctx context.Context, id string) error {
	s.logger.Info("Cancel: cancelling booking id=%s", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrCannotCancel) {
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.invalidateDate(ctx, booking.Date.Format(domain.DateFormat))
	s.notifier.PlanningChanged(ctx)
	if s.metrics != nil {
		s.metrics.BookingsCancelled.Inc()
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s ref=%s", id, booking.PublicReference)
	return nil
}

// ListWithFilter получает бронирования с гибкой фильтрацией (админский список)
func (s *Service) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result, err := s.bookingRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListWithFilter: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListWithFilter - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

// PlanningForDay получает активные бронирования дня в порядке отправления
// (вид планинга для операторов)
func (s *Service) PlanningForDay(ctx context.Context, day string) ([]*domain.Booking, error) {
	parsed, err := domain.ParseDate(day)
	if err != nil {
		return nil, err
	}

	dayStart, dayEnd := domain.DayWindowUTC(parsed)
	result, err := s.bookingRepo.ListForDay(ctx, dayStart, dayEnd)
	if err != nil {
		s.logger.Error("PlanningForDay: repository error for day=%s: %v", day, err)
		return nil, fmt.Errorf("%w: PlanningForDay - repository error: %v", ErrInternal, err)
	}
	return result, nil
}

func (s *Service) invalidateDate(ctx context.Context, date string) {
	if err := s.cache.DeleteByPrefix(ctx, cache.AvailabilityDatePrefix(date)); err != nil {
		s.logger.Warn("invalidateDate: failed to invalidate availability cache for %s: %v", date, err)
	}
}
