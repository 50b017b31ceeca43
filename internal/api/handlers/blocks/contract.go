package blocks

import (
	"context"
	"time"

	"github.com/kalicatt/boat-booking-saas-sub003/internal/domain"
)

type ScheduleService interface {
	ListBlocks(ctx context.Context, from time.Time) ([]*domain.BlockedInterval, error)
	CreateBlock(ctx context.Context, b *domain.BlockedInterval) (*domain.BlockedInterval, error)
	DeleteBlock(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
