package fleet

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
	quotaRepo "github.com/kalicatt/boat-booking-saas-sub003/internal/infra/storage/quota"
)

// Service сервис для работы с флотом и дневными квотами
type Service struct {
	boatRepo  BoatRepository
	quotaRepo QuotaRepository
	cache     Cache
	boatsTTL  time.Duration
	schedule  domain.Schedule
	logger    Logger
}

// NewService создает новый экземпляр сервиса флота
func NewService(
	boatRepo BoatRepository,
	quotaRepo QuotaRepository,
	c Cache,
	boatsTTL time.Duration,
	schedule domain.Schedule,
	logger Logger,
) *Service {
	return &Service{
		boatRepo:  boatRepo,
		quotaRepo: quotaRepo,
		cache:     c,
		boatsTTL:  boatsTTL,
		schedule:  schedule,
		logger:    logger,
	}
}

// ListActiveBoats получает активные лодки в стабильном порядке (id ASC),
// с коротким кешированием. Ошибки кеша трактуются как промах.
func (s *Service) ListActiveBoats(ctx context.Context) ([]*domain.Boat, error) {
	if cached, err := s.cache.Get(ctx, cache.BoatsKey); err == nil {
		var boats []*domain.Boat
		if err := json.Unmarshal(cached, &boats); err == nil {
			return boats, nil
		}
		s.logger.Warn("ListActiveBoats: failed to decode cached boats, falling back to storage")
	}

	boats, err := s.boatRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActiveBoats: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActiveBoats - repository error: %v", ErrInternal, err)
	}

	if encoded, err := json.Marshal(boats); err == nil {
		if err := s.cache.Set(ctx, cache.BoatsKey, encoded, s.boatsTTL); err != nil {
			s.logger.Warn("ListActiveBoats: failed to cache boats: %v", err)
		}
	}

	return boats, nil
}

// ListBoatSlotsForDay строит привязку лодок к смещениям отправления на день.
// Активные лодки берутся в стабильном порядке, затем дневная квота (если
// задана) ограничивает список первыми N лодками, и только после этого
// лодки позиционно связываются со смещениями цикла.
func (s *Service) ListBoatSlotsForDay(ctx context.Context, day time.Time) ([]domain.BoatSlot, error) {
	boats, err := s.ListActiveBoats(ctx)
	if err != nil {
		return nil, err
	}

	q, err := s.quotaRepo.GetForDay(ctx, day)
	if err != nil && !errors.Is(err, quotaRepo.ErrQuotaNotFound) {
		s.logger.Error("ListBoatSlotsForDay: quota repository error for day=%s: %v",
			day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ListBoatSlotsForDay - quota repository error: %v", ErrInternal, err)
	}

	if q != nil && q.BoatsAvailable < len(boats) {
		boats = boats[:q.BoatsAvailable]
	}

	return domain.AssignOffsets(boats, s.schedule.Offsets), nil
}

// ListFleet получает все лодки флота, включая выведенные на обслуживание
func (s *Service) ListFleet(ctx context.Context) ([]*domain.Boat, error) {
	boats, err := s.boatRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListFleet: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListFleet - repository error: %v", ErrInternal, err)
	}
	return boats, nil
}

// SetBoatStatus переводит лодку между ACTIVE и MAINTENANCE и сбрасывает
// кеш активных лодок
func (s *Service) SetBoatStatus(ctx context.Context, id int64, status domain.BoatStatus) error {
	s.logger.Info("SetBoatStatus: boat id=%d -> %s", id, status)

	if err := s.boatRepo.UpdateStatus(ctx, id, status); err != nil {
		s.logger.Error("SetBoatStatus: repository error for boat id=%d: %v", id, err)
		return fmt.Errorf("%w: SetBoatStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Delete(ctx, cache.BoatsKey); err != nil {
		s.logger.Warn("SetBoatStatus: failed to invalidate boats cache: %v", err)
	}

	return nil
}

// GetQuota получает квоту на день
func (s *Service) GetQuota(ctx context.Context, day time.Time) (*domain.DailyBoatQuota, error) {
	q, err := s.quotaRepo.GetForDay(ctx, day)
	if err != nil {
		if errors.Is(err, quotaRepo.ErrQuotaNotFound) {
			return nil, ErrQuotaNotFound
		}
		s.logger.Error("GetQuota: repository error for day=%s: %v", day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetQuota - repository error: %v", ErrInternal, err)
	}
	return q, nil
}

// SetQuota создает или обновляет квоту на день.
// Квота ограничена диапазоном 1..MaxDailyBoats.
func (s *Service) SetQuota(ctx context.Context, q *domain.DailyBoatQuota) (*domain.DailyBoatQuota, error) {
	if q.BoatsAvailable < 1 || q.BoatsAvailable > domain.MaxDailyBoats {
		return nil, fmt.Errorf("%w: boats_available must be within 1..%d", ErrInvalidQuota, domain.MaxDailyBoats)
	}

	s.logger.Info("SetQuota: day=%s boats=%d", q.Day.Format(domain.DateFormat), q.BoatsAvailable)

	saved, err := s.quotaRepo.Upsert(ctx, q)
	if err != nil {
		s.logger.Error("SetQuota: repository error for day=%s: %v", q.Day.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: SetQuota - repository error: %v", ErrInternal, err)
	}

	return saved, nil
}

// RemoveQuota снимает квоту с дня
func (s *Service) RemoveQuota(ctx context.Context, day time.Time) error {
	s.logger.Info("RemoveQuota: day=%s", day.Format(domain.DateFormat))

	if err := s.quotaRepo.Delete(ctx, day); err != nil {
		if errors.Is(err, quotaRepo.ErrQuotaNotFound) {
			return ErrQuotaNotFound
		}
		s.logger.Error("RemoveQuota: repository error for day=%s: %v", day.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: RemoveQuota - repository error: %v", ErrInternal, err)
	}

	return nil
}
