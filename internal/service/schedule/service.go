package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
	"github.com/kalicatt/boat-booking-saas-sub003/internal/infra/cache"
	blockRepo "github.com/kalicatt/boat-booking-saas-sub003/internal/infra/storage/block"
)

// Service сервис управления блокировками расписания
type Service struct {
	blockRepo BlockRepository
	cache     Cache
	notifier  PlanningNotifier
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	blockRepo BlockRepository,
	c Cache,
	notifier PlanningNotifier,
	logger Logger,
) *Service {
	return &Service{
		blockRepo: blockRepo,
		cache:     c,
		notifier:  notifier,
		logger:    logger,
	}
}

// ListBlocks получает блокировки, заканчивающиеся не раньше указанного момента
func (s *Service) ListBlocks(ctx context.Context, from time.Time) ([]*domain.BlockedInterval, error) {
	blocks, err := s.blockRepo.List(ctx, from)
	if err != nil {
		s.logger.Error("ListBlocks: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListBlocks - repository error: %v", ErrInternal, err)
	}
	return blocks, nil
}

// CreateBlock создает блокировку и сбрасывает кеш доступности на все
// накрытые ею даты
func (s *Service) CreateBlock(ctx context.Context, b *domain.BlockedInterval) (*domain.BlockedInterval, error) {
	if !b.End.After(b.Start) {
		return nil, fmt.Errorf("%w: end must be after start", ErrInvalidBlock)
	}
	if b.Scope != domain.ScopeDay && b.Scope != domain.ScopeInterval {
		return nil, fmt.Errorf("%w: unknown scope %q", ErrInvalidBlock, b.Scope)
	}
	if b.Reason == "" {
		return nil, fmt.Errorf("%w: reason is required", ErrInvalidBlock)
	}

	s.logger.Info("CreateBlock: %s..%s scope=%s reason=%s",
		b.Start.Format(time.RFC3339), b.End.Format(time.RFC3339), b.Scope, b.Reason)

	created, err := s.blockRepo.Create(ctx, b)
	if err != nil {
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.invalidateRange(ctx, created.Start, created.End)
	s.notifier.PlanningChanged(ctx)

	return created, nil
}

// DeleteBlock удаляет блокировку и сбрасывает кеш на освободившиеся даты
func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	// Границы нужны до удаления, чтобы знать, какие даты инвалидировать
	target, err := s.blockRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: removed block id=%d", id)

	s.invalidateRange(ctx, target.Start, target.End)
	s.notifier.PlanningChanged(ctx)

	return nil
}

// invalidateRange сбрасывает кеш доступности по каждой дате интервала
func (s *Service) invalidateRange(ctx context.Context, from, to time.Time) {
	for day := domain.NormalizeDay(from); !day.After(to); day = day.AddDate(0, 0, 1) {
		date := day.Format(domain.DateFormat)
		if err := s.cache.DeleteByPrefix(ctx, cache.AvailabilityDatePrefix(date)); err != nil {
			s.logger.Warn("invalidateRange: failed to invalidate availability cache for %s: %v", date, err)
		}
	}
}
